package quran

// DefaultCatalog returns the surahs covered by the memorization program:
// Al-Fatihah plus the short surahs from At-Tariq to An-Nas.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Surah{
		{ID: 1, Name: "الفاتحة", Transliteration: "Al-Fatihah", TotalAyat: 7},
		{ID: 86, Name: "الطارق", Transliteration: "At-Tariq", TotalAyat: 17},
		{ID: 87, Name: "الأعلى", Transliteration: "Al-A'la", TotalAyat: 19},
		{ID: 88, Name: "الغاشية", Transliteration: "Al-Ghashiyah", TotalAyat: 26},
		{ID: 89, Name: "الفجر", Transliteration: "Al-Fajr", TotalAyat: 30},
		{ID: 90, Name: "البلد", Transliteration: "Al-Balad", TotalAyat: 20},
		{ID: 91, Name: "الشمس", Transliteration: "Ash-Shams", TotalAyat: 15},
		{ID: 92, Name: "الليل", Transliteration: "Al-Layl", TotalAyat: 21},
		{ID: 93, Name: "الضحى", Transliteration: "Ad-Duhaa", TotalAyat: 11},
		{ID: 94, Name: "الشرح", Transliteration: "Ash-Sharh", TotalAyat: 8},
		{ID: 95, Name: "التين", Transliteration: "At-Tin", TotalAyat: 8},
		{ID: 96, Name: "العلق", Transliteration: "Al-'Alaq", TotalAyat: 19},
		{ID: 97, Name: "القدر", Transliteration: "Al-Qadr", TotalAyat: 5},
		{ID: 98, Name: "البينة", Transliteration: "Al-Bayyinah", TotalAyat: 8},
		{ID: 99, Name: "الزلزلة", Transliteration: "Az-Zalzalah", TotalAyat: 8},
		{ID: 100, Name: "العاديات", Transliteration: "Al-'Adiyat", TotalAyat: 11},
		{ID: 101, Name: "القارعة", Transliteration: "Al-Qari'ah", TotalAyat: 11},
		{ID: 102, Name: "التكاثر", Transliteration: "At-Takathur", TotalAyat: 8},
		{ID: 103, Name: "العصر", Transliteration: "Al-'Asr", TotalAyat: 3},
		{ID: 104, Name: "الهمزة", Transliteration: "Al-Humazah", TotalAyat: 9},
		{ID: 105, Name: "الفيل", Transliteration: "Al-Fil", TotalAyat: 5},
		{ID: 106, Name: "قريش", Transliteration: "Quraysh", TotalAyat: 4},
		{ID: 107, Name: "الماعون", Transliteration: "Al-Ma'un", TotalAyat: 7},
		{ID: 108, Name: "الكوثر", Transliteration: "Al-Kawthar", TotalAyat: 3},
		{ID: 109, Name: "الكافرون", Transliteration: "Al-Kafirun", TotalAyat: 6},
		{ID: 110, Name: "النصر", Transliteration: "An-Nasr", TotalAyat: 3},
		{ID: 111, Name: "المسد", Transliteration: "Al-Masad", TotalAyat: 5},
		{ID: 112, Name: "الإخلاص", Transliteration: "Al-Ikhlas", TotalAyat: 4},
		{ID: 113, Name: "الفلق", Transliteration: "Al-Falaq", TotalAyat: 5},
		{ID: 114, Name: "الناس", Transliteration: "An-Nas", TotalAyat: 6},
	})
}
