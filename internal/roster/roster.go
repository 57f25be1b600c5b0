// Package roster holds the staff directory: who exists, identified by NIP.
// The directory sheet is the source of truth for identity.
package roster

import "presensi/internal/sheetcsv"

// Roles excluded from the operational roster.
const (
	RoleAdmin      = "Admin"
	RoleSuperadmin = "Superadmin"
)

// Person is one staff record from the directory sheet.
type Person struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	NIP      string `json:"nip"`
	Role     string `json:"role"`
	School   string `json:"school"`
	Status   string `json:"status"`
	Avatar   string `json:"avatar,omitempty"`
}

// DisplayName prefers the full name and falls back to the username.
func (p Person) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}

// FromRecords adapts parsed sheet records into Persons. A record without a
// NIP has no identity to join on and is skipped.
func FromRecords(records []sheetcsv.Record) []Person {
	people := make([]Person, 0, len(records))
	for _, rec := range records {
		p := Person{
			Username: rec[sheetcsv.HeaderUsername],
			Password: rec[sheetcsv.HeaderPassword],
			Name:     rec[sheetcsv.HeaderNama],
			NIP:      rec[sheetcsv.HeaderNIP],
			Role:     rec[sheetcsv.HeaderRole],
			School:   rec[sheetcsv.HeaderSekolah],
			Status:   rec[sheetcsv.HeaderStatus],
			Avatar:   rec[sheetcsv.HeaderAvatar],
		}
		if p.NIP == "" {
			continue
		}
		people = append(people, p)
	}
	return people
}

// Operational returns the roster with administrative roles removed. Admins
// appear in the directory for login purposes but are never reconciled or
// recapped.
func Operational(people []Person) []Person {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if p.Role == RoleAdmin || p.Role == RoleSuperadmin {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Fallback is the fixed roster used when the directory source is unreachable
// or returns garbage. Keeps the dashboard rendering instead of crashing.
func Fallback() []Person {
	return []Person{
		{
			Username: "guru1",
			Password: "123",
			Name:     "Ahmad Suherman, S.Pd",
			NIP:      "198506122010011005",
			Role:     "Guru",
			School:   "SMPN 1 Padarincang",
			Status:   "PNS / ASN",
		},
		{
			Username: "admin1",
			Password: "123",
			Name:     "Hj. Siti Aminah, M.Pd",
			NIP:      "197005121995012001",
			Role:     RoleAdmin,
			School:   "SMPN 1 Padarincang",
			Status:   "Kepala Sekolah",
		},
	}
}
