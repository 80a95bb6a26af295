package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// CalendarDate is a plain year/month/day with no time-of-day or time zone
// component. Installation dates are calendar dates: a site visit booked for
// "2026-09-14" means the 14th wherever the site is, so carrying an offset
// around would only invite conversion bugs.
type CalendarDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// IsZero reports whether the date has not been set.
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as an ISO "YYYY-MM-DD" string, or null when
// unset.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", an empty string, or null.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var s string
	if string(data) == "null" {
		*d = CalendarDate{}
		return nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid calendar date: %w", err)
	}
	if s == "" {
		*d = CalendarDate{}
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	*d = CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
	return nil
}

// ProjectInfo holds the contact and project details captured during the
// information-entry stage. The five string fields are required; the
// installation date and notes are optional.
type ProjectInfo struct {
	Name             string       `json:"name" validate:"required"`
	Location         string       `json:"location" validate:"required"`
	ContactName      string       `json:"contact_name" validate:"required"`
	ContactPhone     string       `json:"contact_phone" validate:"required,quotephone"`
	ContactEmail     string       `json:"contact_email" validate:"required,quoteemail"`
	InstallationDate CalendarDate `json:"installation_date,omitempty"`
	Notes            string       `json:"notes,omitempty"`
}

// ProjectInfoPatch is a partial update to ProjectInfo. Nil fields are left
// untouched by Apply.
type ProjectInfoPatch struct {
	Name             *string       `json:"name,omitempty"`
	Location         *string       `json:"location,omitempty"`
	ContactName      *string       `json:"contact_name,omitempty"`
	ContactPhone     *string       `json:"contact_phone,omitempty"`
	ContactEmail     *string       `json:"contact_email,omitempty"`
	InstallationDate *CalendarDate `json:"installation_date,omitempty"`
	Notes            *string       `json:"notes,omitempty"`
}

// Apply merges the patch into the given info and returns the updated value.
func (p ProjectInfoPatch) Apply(info ProjectInfo) ProjectInfo {
	if p.Name != nil {
		info.Name = *p.Name
	}
	if p.Location != nil {
		info.Location = *p.Location
	}
	if p.ContactName != nil {
		info.ContactName = *p.ContactName
	}
	if p.ContactPhone != nil {
		info.ContactPhone = *p.ContactPhone
	}
	if p.ContactEmail != nil {
		info.ContactEmail = *p.ContactEmail
	}
	if p.InstallationDate != nil {
		info.InstallationDate = *p.InstallationDate
	}
	if p.Notes != nil {
		info.Notes = *p.Notes
	}
	return info
}
