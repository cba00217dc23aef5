package models

import (
	"time"
)

const (
	GalleryTypeMain    = "main"
	GalleryTypeGallery = "gallery"

	SideGroom = "groom"
	SideBride = "bride"
)

type GalleryItem struct {
	ID         int64      `json:"id" db:"id"`
	Filename   string     `json:"filename" db:"filename"`
	Type       string     `json:"type" db:"type"`
	OrderIndex int        `json:"orderIndex" db:"order_index"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	URL        string     `json:"url" db:"-"`
}

func (g *GalleryItem) IsDeleted() bool {
	return g.DeletedAt != nil
}

type GuestbookEntry struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Content   string     `json:"content" db:"content"`
	Password  string     `json:"-" db:"password"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

type Contact struct {
	ID            int64     `json:"id" db:"id"`
	Side          string    `json:"side" db:"side"`
	Relationship  string    `json:"relationship" db:"relationship"`
	Name          string    `json:"name" db:"name"`
	Phone         string    `json:"phone" db:"phone"`
	BankName      string    `json:"bankName" db:"bank_name"`
	AccountNumber string    `json:"accountNumber" db:"account_number"`
	KakaoPayURL   *string   `json:"kakaoPayUrl,omitempty" db:"kakao_pay_url"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type Invitation struct {
	ID           int       `json:"-" db:"id"`
	GroomName    string    `json:"groomName" db:"groom_name"`
	BrideName    string    `json:"brideName" db:"bride_name"`
	WeddingDate  time.Time `json:"weddingDate" db:"wedding_date"`
	Venue        string    `json:"venue" db:"venue"`
	VenueAddress string    `json:"venueAddress" db:"venue_address"`
	MainImage    *string   `json:"mainImage,omitempty" db:"main_image"`
	Message      string    `json:"message" db:"message"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Stats struct {
	GalleryPhotos    int  `json:"galleryPhotos" db:"gallery_photos"`
	HasMainImage     bool `json:"hasMainImage" db:"has_main_image"`
	GuestbookEntries int  `json:"guestbookEntries" db:"guestbook_entries"`
	Contacts         int  `json:"contacts" db:"contacts"`
	PendingPurge     int  `json:"pendingPurge" db:"pending_purge"`
}
