package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusWantToRead Status = "WANT_TO_READ"
	StatusRead       Status = "READ"
)

func (s Status) Valid() bool {
	return s == StatusWantToRead || s == StatusRead
}

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Book struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Author        string    `json:"author" db:"author"`
	Status        Status    `json:"status" db:"status"`
	OwnerID       uuid.UUID `json:"ownerId" db:"owner_id"`
	ImageRef      *string   `json:"imageRef,omitempty" db:"image_ref"`
	Reviews       []Review  `json:"reviews" db:"reviews"`
	AverageRating float64   `json:"averageRating" db:"average_rating"`
	Version       int64     `json:"-" db:"version"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// Review is stored embedded in its book, in insertion order.
type Review struct {
	ID           uuid.UUID  `json:"id"`
	ReviewerID   uuid.UUID  `json:"reviewerId"`
	ReviewerName string     `json:"reviewerName"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type BookView struct {
	Book    `json:",inline"`
	IsOwner bool `json:"isOwner"`
}

type CreateBookRequest struct {
	Title    string  `json:"title" validate:"required,max=512"`
	Author   string  `json:"author" validate:"required,max=512"`
	Status   Status  `json:"status" validate:"omitempty,oneof=WANT_TO_READ READ"`
	ImageRef *string `json:"imageRef" validate:"omitempty,url|datauri"`
}

// BookDraft is a book about to be inserted.
type BookDraft struct {
	Title    string
	Author   string
	Status   Status
	OwnerID  uuid.UUID
	ImageRef *string
}

// BookPatch holds the fields to change; nil fields are left as is.
type BookPatch struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=512"`
	Author   *string `json:"author" validate:"omitempty,min=1,max=512"`
	Status   *Status `json:"status" validate:"omitempty,oneof=WANT_TO_READ READ"`
	ImageRef *string `json:"imageRef" validate:"omitempty,url|datauri"`
}

func (p BookPatch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Status == nil && p.ImageRef == nil
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=4096"`
}

type ReviewDraft struct {
	ReviewerID   uuid.UUID
	ReviewerName string
	Rating       int
	Comment      string
}

type BookFilter struct {
	OwnerID *uuid.UUID
	Status  *Status
	Page    int
	Size    int
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        User      `json:"user"`
}
