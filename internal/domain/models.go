package domain

import "time"

// Client is a person allowed to book courts.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:120" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Client) FullName() string { return c.FirstName + " " + c.LastName }

// Court is a bookable physical resource.
type Court struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Category  string    `gorm:"size:30;not null" json:"category"` // sport type
	Location  string    `gorm:"size:50" json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// Reservation books one court for one client over the half-open
// interval [StartTime, EndTime) on a single date. Dates are stored as
// "2006-01-02" and times as zero-padded "15:04", so both Go string
// comparison and SQL ordering agree with chronological order.
type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"size:10;not null;index:idx_court_day" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	CourtID   uint      `gorm:"not null;index:idx_court_day" json:"court_id"`
	CreatedAt time.Time `json:"created_at"`

	Client Client `gorm:"foreignKey:ClientID" json:"-"`
	Court  Court  `gorm:"foreignKey:CourtID" json:"-"`
}

// Audit outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// AuditEntry is an append-only record of an attempted state-changing
// action. Entries are never updated or deleted.
type AuditEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"size:100;index" json:"actor"`
	Action    string    `gorm:"size:200" json:"action"`
	Outcome   string    `gorm:"size:20;index" json:"outcome"`
	SourceIP  string    `gorm:"size:64" json:"source_ip"`
	CreatedAt time.Time `json:"created_at"`
}
