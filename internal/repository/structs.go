package repository

import (
	"errors"
	"time"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrOrderHasNoBox  = errors.New("order has no box assigned")
	ErrOrderHasBox    = errors.New("order already has a box assigned")
	ErrBoxOccupied    = errors.New("box is occupied")
)

// Client is the renter profile attached to an account. UserName and
// UserEmail are read-side fields filled from the joined users row and are
// never written back.
type Client struct {
	UserID      int64   `db:"user_id"`
	Address     *string `db:"address"`
	PhoneNumber *string `db:"phone_number"`
	UserName    string  `db:"user_name"`
	UserEmail   string  `db:"user_email"`
}

// Storage is a warehouse site containing rentable boxes. The three stats
// fields are request-scoped: they are attached by box-stats annotation and
// are not persisted.
type Storage struct {
	ID      int64  `db:"id"`
	Number  int    `db:"number"`
	City    string `db:"city"`
	Address string `db:"address"`
	Feature string `db:"feature"`
	Image   string `db:"image"`

	CountBoxes       int  `db:"-"`
	CountOfFreeBoxes int  `db:"-"`
	MinPrice         *int `db:"-"`
}

type Box struct {
	ID         int64   `db:"id"`
	StorageID  int64   `db:"storage_id"`
	Name       string  `db:"name"`
	Length     float64 `db:"length"`
	Width      float64 `db:"width"`
	Height     float64 `db:"height"`
	Price      int     `db:"price"`
	IsOccupied bool    `db:"is_occupied"`
}

// Order links a client to an optionally-assigned box. Price is a snapshot of
// the agreed price at order time and is never synced with the box price.
// CreatedAt is set once at creation and stays immutable.
type Order struct {
	ID        int64      `db:"id"`
	ClientID  int64      `db:"client_id"`
	BoxID     *int64     `db:"box_id"`
	CreatedAt time.Time  `db:"created_at"`
	PaidWith  *time.Time `db:"paid_with"`
	Price     int        `db:"price"`
	Size      *string    `db:"size"`
}

// BoxStats is the per-warehouse aggregate: total boxes, free boxes and the
// minimum price. MinPrice is nil when the warehouse has no boxes.
type BoxStats struct {
	CountBoxes       int  `db:"count_boxes"`
	CountOfFreeBoxes int  `db:"count_of_free_boxes"`
	MinPrice         *int `db:"min_price"`
}

// User belongs to the account subsystem; this layer only reads the fields
// the client profile derives from and validates basic-auth credentials.
type User struct {
	ID        int64  `db:"id"`
	Username  string `db:"username"`
	Password  string `db:"password"`
	Email     string `db:"email"`
	FirstName string `db:"first_name"`
}
