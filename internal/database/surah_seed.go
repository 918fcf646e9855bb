package database

import "github.com/tahfiz/listening/internal/entities"

// SurahSeed returns the full 114-chapter reference table. Ayah counts follow
// the Uthmani (Hafs) numbering.
func SurahSeed() []entities.SurahReference {
	return []entities.SurahReference{
		{SurahNumber: 1, SurahNameArabic: "الفاتحة", SurahNameEnglish: "Al-Fatihah", TotalAyahs: 7, IsMakki: true},
		{SurahNumber: 2, SurahNameArabic: "البقرة", SurahNameEnglish: "Al-Baqarah", TotalAyahs: 286, IsMakki: false},
		{SurahNumber: 3, SurahNameArabic: "آل عمران", SurahNameEnglish: "Aal-E-Imran", TotalAyahs: 200, IsMakki: false},
		{SurahNumber: 4, SurahNameArabic: "النساء", SurahNameEnglish: "An-Nisa", TotalAyahs: 176, IsMakki: false},
		{SurahNumber: 5, SurahNameArabic: "المائدة", SurahNameEnglish: "Al-Ma'idah", TotalAyahs: 120, IsMakki: false},
		{SurahNumber: 6, SurahNameArabic: "الأنعام", SurahNameEnglish: "Al-An'am", TotalAyahs: 165, IsMakki: true},
		{SurahNumber: 7, SurahNameArabic: "الأعراف", SurahNameEnglish: "Al-A'raf", TotalAyahs: 206, IsMakki: true},
		{SurahNumber: 8, SurahNameArabic: "الأنفال", SurahNameEnglish: "Al-Anfal", TotalAyahs: 75, IsMakki: false},
		{SurahNumber: 9, SurahNameArabic: "التوبة", SurahNameEnglish: "At-Tawbah", TotalAyahs: 129, IsMakki: false},
		{SurahNumber: 10, SurahNameArabic: "يونس", SurahNameEnglish: "Yunus", TotalAyahs: 109, IsMakki: true},
		{SurahNumber: 11, SurahNameArabic: "هود", SurahNameEnglish: "Hud", TotalAyahs: 123, IsMakki: true},
		{SurahNumber: 12, SurahNameArabic: "يوسف", SurahNameEnglish: "Yusuf", TotalAyahs: 111, IsMakki: true},
		{SurahNumber: 13, SurahNameArabic: "الرعد", SurahNameEnglish: "Ar-Ra'd", TotalAyahs: 43, IsMakki: false},
		{SurahNumber: 14, SurahNameArabic: "إبراهيم", SurahNameEnglish: "Ibrahim", TotalAyahs: 52, IsMakki: true},
		{SurahNumber: 15, SurahNameArabic: "الحجر", SurahNameEnglish: "Al-Hijr", TotalAyahs: 99, IsMakki: true},
		{SurahNumber: 16, SurahNameArabic: "النحل", SurahNameEnglish: "An-Nahl", TotalAyahs: 128, IsMakki: true},
		{SurahNumber: 17, SurahNameArabic: "الإسراء", SurahNameEnglish: "Al-Isra", TotalAyahs: 111, IsMakki: true},
		{SurahNumber: 18, SurahNameArabic: "الكهف", SurahNameEnglish: "Al-Kahf", TotalAyahs: 110, IsMakki: true},
		{SurahNumber: 19, SurahNameArabic: "مريم", SurahNameEnglish: "Maryam", TotalAyahs: 98, IsMakki: true},
		{SurahNumber: 20, SurahNameArabic: "طه", SurahNameEnglish: "Taha", TotalAyahs: 135, IsMakki: true},
		{SurahNumber: 21, SurahNameArabic: "الأنبياء", SurahNameEnglish: "Al-Anbiya", TotalAyahs: 112, IsMakki: true},
		{SurahNumber: 22, SurahNameArabic: "الحج", SurahNameEnglish: "Al-Hajj", TotalAyahs: 78, IsMakki: false},
		{SurahNumber: 23, SurahNameArabic: "المؤمنون", SurahNameEnglish: "Al-Mu'minun", TotalAyahs: 118, IsMakki: true},
		{SurahNumber: 24, SurahNameArabic: "النور", SurahNameEnglish: "An-Nur", TotalAyahs: 64, IsMakki: false},
		{SurahNumber: 25, SurahNameArabic: "الفرقان", SurahNameEnglish: "Al-Furqan", TotalAyahs: 77, IsMakki: true},
		{SurahNumber: 26, SurahNameArabic: "الشعراء", SurahNameEnglish: "Ash-Shu'ara", TotalAyahs: 227, IsMakki: true},
		{SurahNumber: 27, SurahNameArabic: "النمل", SurahNameEnglish: "An-Naml", TotalAyahs: 93, IsMakki: true},
		{SurahNumber: 28, SurahNameArabic: "القصص", SurahNameEnglish: "Al-Qasas", TotalAyahs: 88, IsMakki: true},
		{SurahNumber: 29, SurahNameArabic: "العنكبوت", SurahNameEnglish: "Al-Ankabut", TotalAyahs: 69, IsMakki: true},
		{SurahNumber: 30, SurahNameArabic: "الروم", SurahNameEnglish: "Ar-Rum", TotalAyahs: 60, IsMakki: true},
		{SurahNumber: 31, SurahNameArabic: "لقمان", SurahNameEnglish: "Luqman", TotalAyahs: 34, IsMakki: true},
		{SurahNumber: 32, SurahNameArabic: "السجدة", SurahNameEnglish: "As-Sajdah", TotalAyahs: 30, IsMakki: true},
		{SurahNumber: 33, SurahNameArabic: "الأحزاب", SurahNameEnglish: "Al-Ahzab", TotalAyahs: 73, IsMakki: false},
		{SurahNumber: 34, SurahNameArabic: "سبأ", SurahNameEnglish: "Saba", TotalAyahs: 54, IsMakki: true},
		{SurahNumber: 35, SurahNameArabic: "فاطر", SurahNameEnglish: "Fatir", TotalAyahs: 45, IsMakki: true},
		{SurahNumber: 36, SurahNameArabic: "يس", SurahNameEnglish: "Ya-Sin", TotalAyahs: 83, IsMakki: true},
		{SurahNumber: 37, SurahNameArabic: "الصافات", SurahNameEnglish: "As-Saffat", TotalAyahs: 182, IsMakki: true},
		{SurahNumber: 38, SurahNameArabic: "ص", SurahNameEnglish: "Sad", TotalAyahs: 88, IsMakki: true},
		{SurahNumber: 39, SurahNameArabic: "الزمر", SurahNameEnglish: "Az-Zumar", TotalAyahs: 75, IsMakki: true},
		{SurahNumber: 40, SurahNameArabic: "غافر", SurahNameEnglish: "Ghafir", TotalAyahs: 85, IsMakki: true},
		{SurahNumber: 41, SurahNameArabic: "فصلت", SurahNameEnglish: "Fussilat", TotalAyahs: 54, IsMakki: true},
		{SurahNumber: 42, SurahNameArabic: "الشورى", SurahNameEnglish: "Ash-Shura", TotalAyahs: 53, IsMakki: true},
		{SurahNumber: 43, SurahNameArabic: "الزخرف", SurahNameEnglish: "Az-Zukhruf", TotalAyahs: 89, IsMakki: true},
		{SurahNumber: 44, SurahNameArabic: "الدخان", SurahNameEnglish: "Ad-Dukhan", TotalAyahs: 59, IsMakki: true},
		{SurahNumber: 45, SurahNameArabic: "الجاثية", SurahNameEnglish: "Al-Jathiyah", TotalAyahs: 37, IsMakki: true},
		{SurahNumber: 46, SurahNameArabic: "الأحقاف", SurahNameEnglish: "Al-Ahqaf", TotalAyahs: 35, IsMakki: true},
		{SurahNumber: 47, SurahNameArabic: "محمد", SurahNameEnglish: "Muhammad", TotalAyahs: 38, IsMakki: false},
		{SurahNumber: 48, SurahNameArabic: "الفتح", SurahNameEnglish: "Al-Fath", TotalAyahs: 29, IsMakki: false},
		{SurahNumber: 49, SurahNameArabic: "الحجرات", SurahNameEnglish: "Al-Hujurat", TotalAyahs: 18, IsMakki: false},
		{SurahNumber: 50, SurahNameArabic: "ق", SurahNameEnglish: "Qaf", TotalAyahs: 45, IsMakki: true},
		{SurahNumber: 51, SurahNameArabic: "الذاريات", SurahNameEnglish: "Adh-Dhariyat", TotalAyahs: 60, IsMakki: true},
		{SurahNumber: 52, SurahNameArabic: "الطور", SurahNameEnglish: "At-Tur", TotalAyahs: 49, IsMakki: true},
		{SurahNumber: 53, SurahNameArabic: "النجم", SurahNameEnglish: "An-Najm", TotalAyahs: 62, IsMakki: true},
		{SurahNumber: 54, SurahNameArabic: "القمر", SurahNameEnglish: "Al-Qamar", TotalAyahs: 55, IsMakki: true},
		{SurahNumber: 55, SurahNameArabic: "الرحمن", SurahNameEnglish: "Ar-Rahman", TotalAyahs: 78, IsMakki: false},
		{SurahNumber: 56, SurahNameArabic: "الواقعة", SurahNameEnglish: "Al-Waqi'ah", TotalAyahs: 96, IsMakki: true},
		{SurahNumber: 57, SurahNameArabic: "الحديد", SurahNameEnglish: "Al-Hadid", TotalAyahs: 29, IsMakki: false},
		{SurahNumber: 58, SurahNameArabic: "المجادلة", SurahNameEnglish: "Al-Mujadila", TotalAyahs: 22, IsMakki: false},
		{SurahNumber: 59, SurahNameArabic: "الحشر", SurahNameEnglish: "Al-Hashr", TotalAyahs: 24, IsMakki: false},
		{SurahNumber: 60, SurahNameArabic: "الممتحنة", SurahNameEnglish: "Al-Mumtahanah", TotalAyahs: 13, IsMakki: false},
		{SurahNumber: 61, SurahNameArabic: "الصف", SurahNameEnglish: "As-Saff", TotalAyahs: 14, IsMakki: false},
		{SurahNumber: 62, SurahNameArabic: "الجمعة", SurahNameEnglish: "Al-Jumu'ah", TotalAyahs: 11, IsMakki: false},
		{SurahNumber: 63, SurahNameArabic: "المنافقون", SurahNameEnglish: "Al-Munafiqun", TotalAyahs: 11, IsMakki: false},
		{SurahNumber: 64, SurahNameArabic: "التغابن", SurahNameEnglish: "At-Taghabun", TotalAyahs: 18, IsMakki: false},
		{SurahNumber: 65, SurahNameArabic: "الطلاق", SurahNameEnglish: "At-Talaq", TotalAyahs: 12, IsMakki: false},
		{SurahNumber: 66, SurahNameArabic: "التحريم", SurahNameEnglish: "At-Tahrim", TotalAyahs: 12, IsMakki: false},
		{SurahNumber: 67, SurahNameArabic: "الملك", SurahNameEnglish: "Al-Mulk", TotalAyahs: 30, IsMakki: true},
		{SurahNumber: 68, SurahNameArabic: "القلم", SurahNameEnglish: "Al-Qalam", TotalAyahs: 52, IsMakki: true},
		{SurahNumber: 69, SurahNameArabic: "الحاقة", SurahNameEnglish: "Al-Haqqah", TotalAyahs: 52, IsMakki: true},
		{SurahNumber: 70, SurahNameArabic: "المعارج", SurahNameEnglish: "Al-Ma'arij", TotalAyahs: 44, IsMakki: true},
		{SurahNumber: 71, SurahNameArabic: "نوح", SurahNameEnglish: "Nuh", TotalAyahs: 28, IsMakki: true},
		{SurahNumber: 72, SurahNameArabic: "الجن", SurahNameEnglish: "Al-Jinn", TotalAyahs: 28, IsMakki: true},
		{SurahNumber: 73, SurahNameArabic: "المزمل", SurahNameEnglish: "Al-Muzzammil", TotalAyahs: 20, IsMakki: true},
		{SurahNumber: 74, SurahNameArabic: "المدثر", SurahNameEnglish: "Al-Muddaththir", TotalAyahs: 56, IsMakki: true},
		{SurahNumber: 75, SurahNameArabic: "القيامة", SurahNameEnglish: "Al-Qiyamah", TotalAyahs: 40, IsMakki: true},
		{SurahNumber: 76, SurahNameArabic: "الإنسان", SurahNameEnglish: "Al-Insan", TotalAyahs: 31, IsMakki: false},
		{SurahNumber: 77, SurahNameArabic: "المرسلات", SurahNameEnglish: "Al-Mursalat", TotalAyahs: 50, IsMakki: true},
		{SurahNumber: 78, SurahNameArabic: "النبأ", SurahNameEnglish: "An-Naba", TotalAyahs: 40, IsMakki: true},
		{SurahNumber: 79, SurahNameArabic: "النازعات", SurahNameEnglish: "An-Nazi'at", TotalAyahs: 46, IsMakki: true},
		{SurahNumber: 80, SurahNameArabic: "عبس", SurahNameEnglish: "Abasa", TotalAyahs: 42, IsMakki: true},
		{SurahNumber: 81, SurahNameArabic: "التكوير", SurahNameEnglish: "At-Takwir", TotalAyahs: 29, IsMakki: true},
		{SurahNumber: 82, SurahNameArabic: "الانفطار", SurahNameEnglish: "Al-Infitar", TotalAyahs: 19, IsMakki: true},
		{SurahNumber: 83, SurahNameArabic: "المطففين", SurahNameEnglish: "Al-Mutaffifin", TotalAyahs: 36, IsMakki: true},
		{SurahNumber: 84, SurahNameArabic: "الانشقاق", SurahNameEnglish: "Al-Inshiqaq", TotalAyahs: 25, IsMakki: true},
		{SurahNumber: 85, SurahNameArabic: "البروج", SurahNameEnglish: "Al-Buruj", TotalAyahs: 22, IsMakki: true},
		{SurahNumber: 86, SurahNameArabic: "الطارق", SurahNameEnglish: "At-Tariq", TotalAyahs: 17, IsMakki: true},
		{SurahNumber: 87, SurahNameArabic: "الأعلى", SurahNameEnglish: "Al-A'la", TotalAyahs: 19, IsMakki: true},
		{SurahNumber: 88, SurahNameArabic: "الغاشية", SurahNameEnglish: "Al-Ghashiyah", TotalAyahs: 26, IsMakki: true},
		{SurahNumber: 89, SurahNameArabic: "الفجر", SurahNameEnglish: "Al-Fajr", TotalAyahs: 30, IsMakki: true},
		{SurahNumber: 90, SurahNameArabic: "البلد", SurahNameEnglish: "Al-Balad", TotalAyahs: 20, IsMakki: true},
		{SurahNumber: 91, SurahNameArabic: "الشمس", SurahNameEnglish: "Ash-Shams", TotalAyahs: 15, IsMakki: true},
		{SurahNumber: 92, SurahNameArabic: "الليل", SurahNameEnglish: "Al-Layl", TotalAyahs: 21, IsMakki: true},
		{SurahNumber: 93, SurahNameArabic: "الضحى", SurahNameEnglish: "Ad-Duha", TotalAyahs: 11, IsMakki: true},
		{SurahNumber: 94, SurahNameArabic: "الشرح", SurahNameEnglish: "Ash-Sharh", TotalAyahs: 8, IsMakki: true},
		{SurahNumber: 95, SurahNameArabic: "التين", SurahNameEnglish: "At-Tin", TotalAyahs: 8, IsMakki: true},
		{SurahNumber: 96, SurahNameArabic: "العلق", SurahNameEnglish: "Al-Alaq", TotalAyahs: 19, IsMakki: true},
		{SurahNumber: 97, SurahNameArabic: "القدر", SurahNameEnglish: "Al-Qadr", TotalAyahs: 5, IsMakki: true},
		{SurahNumber: 98, SurahNameArabic: "البينة", SurahNameEnglish: "Al-Bayyinah", TotalAyahs: 8, IsMakki: false},
		{SurahNumber: 99, SurahNameArabic: "الزلزلة", SurahNameEnglish: "Az-Zalzalah", TotalAyahs: 8, IsMakki: false},
		{SurahNumber: 100, SurahNameArabic: "العاديات", SurahNameEnglish: "Al-Adiyat", TotalAyahs: 11, IsMakki: true},
		{SurahNumber: 101, SurahNameArabic: "القارعة", SurahNameEnglish: "Al-Qari'ah", TotalAyahs: 11, IsMakki: true},
		{SurahNumber: 102, SurahNameArabic: "التكاثر", SurahNameEnglish: "At-Takathur", TotalAyahs: 8, IsMakki: true},
		{SurahNumber: 103, SurahNameArabic: "العصر", SurahNameEnglish: "Al-Asr", TotalAyahs: 3, IsMakki: true},
		{SurahNumber: 104, SurahNameArabic: "الهمزة", SurahNameEnglish: "Al-Humazah", TotalAyahs: 9, IsMakki: true},
		{SurahNumber: 105, SurahNameArabic: "الفيل", SurahNameEnglish: "Al-Fil", TotalAyahs: 5, IsMakki: true},
		{SurahNumber: 106, SurahNameArabic: "قريش", SurahNameEnglish: "Quraysh", TotalAyahs: 4, IsMakki: true},
		{SurahNumber: 107, SurahNameArabic: "الماعون", SurahNameEnglish: "Al-Ma'un", TotalAyahs: 7, IsMakki: true},
		{SurahNumber: 108, SurahNameArabic: "الكوثر", SurahNameEnglish: "Al-Kawthar", TotalAyahs: 3, IsMakki: true},
		{SurahNumber: 109, SurahNameArabic: "الكافرون", SurahNameEnglish: "Al-Kafirun", TotalAyahs: 6, IsMakki: true},
		{SurahNumber: 110, SurahNameArabic: "النصر", SurahNameEnglish: "An-Nasr", TotalAyahs: 3, IsMakki: false},
		{SurahNumber: 111, SurahNameArabic: "المسد", SurahNameEnglish: "Al-Masad", TotalAyahs: 5, IsMakki: true},
		{SurahNumber: 112, SurahNameArabic: "الإخلاص", SurahNameEnglish: "Al-Ikhlas", TotalAyahs: 4, IsMakki: true},
		{SurahNumber: 113, SurahNameArabic: "الفلق", SurahNameEnglish: "Al-Falaq", TotalAyahs: 5, IsMakki: true},
		{SurahNumber: 114, SurahNameArabic: "الناس", SurahNameEnglish: "An-Nas", TotalAyahs: 6, IsMakki: true},
	}
}
