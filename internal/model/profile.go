package model

// UserProfile holds the per-user settings consumed by formatting and display.
// HideBalance and IsDarkMode only affect presentation; the underlying numbers
// are never altered or removed.
type UserProfile struct {
	Name        string `json:"name"`
	Job         string `json:"job"`
	Currency    string `json:"currency"` // ISO 4217 code
	Locale      string `json:"locale"`   // BCP 47 tag, drives number/date formatting
	Password    string `json:"password,omitempty"`
	Age         int    `json:"age"`
	HideBalance bool   `json:"hideBalance"`
	IsDarkMode  bool   `json:"isDarkMode"`
}

// DefaultProfile returns the profile created for a namespace on first login.
func DefaultProfile(name string) UserProfile {
	return UserProfile{
		Name:     name,
		Currency: "EUR",
		Locale:   "pt-PT",
	}
}

// ProfileUpdate is a typed partial update for a profile. Nil fields are left
// untouched. Each editable field has exactly one case here; there is no
// generic field-name lookup.
type ProfileUpdate struct {
	Name        *string
	Job         *string
	Currency    *string
	Locale      *string
	Password    *string
	Age         *int
	HideBalance *bool
	IsDarkMode  *bool
}

// Apply merges the update into the profile and returns the result.
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Job != nil {
		p.Job = *u.Job
	}
	if u.Currency != nil {
		p.Currency = *u.Currency
	}
	if u.Locale != nil {
		p.Locale = *u.Locale
	}
	if u.Password != nil {
		p.Password = *u.Password
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.HideBalance != nil {
		p.HideBalance = *u.HideBalance
	}
	if u.IsDarkMode != nil {
		p.IsDarkMode = *u.IsDarkMode
	}
	return p
}
