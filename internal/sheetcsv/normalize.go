package sheetcsv

import "strings"

// Canonical header names produced by NormalizeHeader.
const (
	HeaderUsername = "Username"
	HeaderPassword = "Password"
	HeaderNama     = "Nama"
	HeaderNIP      = "NIP"
	HeaderRole     = "Role"
	HeaderSekolah  = "Sekolah"
	HeaderStatus   = "Status"
	HeaderAvatar   = "Avatar"
)

// The sheet editors rename columns freely, in two languages. Every alias is
// matched after lowercasing and stripping non-alphanumerics.
var headerAliases = map[string]string{}

func init() {
	groups := map[string][]string{
		HeaderUsername: {"username", "user", "id", "user_name"},
		HeaderPassword: {"password", "pass", "sandi", "katasandi", "pin"},
		HeaderNama:     {"nama", "name", "namalengkap", "fullname", "nama_lengkap"},
		HeaderNIP:      {"nip", "nomor induk", "id pegawai"},
		HeaderRole:     {"role", "peran", "jabatan", "level", "akses"},
		HeaderSekolah:  {"sekolah", "school", "unit kerja", "instansi"},
		HeaderStatus:   {"status", "status pegawai", "kepegawaian"},
		HeaderAvatar:   {"avatar", "foto", "photo", "gambar", "url foto"},
	}
	for canonical, aliases := range groups {
		for _, alias := range aliases {
			headerAliases[foldHeader(alias)] = canonical
		}
	}
}

// NormalizeHeader maps a raw column label to its canonical name. Matching
// ignores case and non-alphanumeric characters; unrecognized labels come back
// unchanged so unknown columns stay inspectable.
func NormalizeHeader(label string) string {
	if canonical, ok := headerAliases[foldHeader(label)]; ok {
		return canonical
	}
	return label
}

func foldHeader(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
