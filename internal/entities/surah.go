package entities

// SurahReference is the static lookup of the 114 chapters of the Quran.
// Seeded once at startup, never mutated afterwards.
type SurahReference struct {
	SurahNumber      int    `gorm:"primaryKey" json:"surah_number"`
	SurahNameArabic  string `gorm:"size:100" json:"surah_name_arabic"`
	SurahNameEnglish string `gorm:"size:100" json:"surah_name_english,omitempty"`
	TotalAyahs       int    `json:"total_ayahs"`
	IsMakki          bool   `json:"is_makki"`
}

func (SurahReference) TableName() string {
	return "surah_references"
}
