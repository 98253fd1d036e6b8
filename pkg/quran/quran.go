package quran

// Surah is an immutable catalog entry for one memorization section.
// TotalAyat bounds valid ayah indices to [1, TotalAyat].
type Surah struct {
	ID              int
	Name            string
	Transliteration string
	TotalAyat       int
}

// Catalog is a read-only ordered list of surahs available for assignments.
// It is built once at startup and passed explicitly to the services that
// need it; nothing reaches for it through package-level state.
type Catalog struct {
	surahs []Surah
	byID   map[int]int
}

func NewCatalog(surahs []Surah) *Catalog {
	c := &Catalog{
		surahs: make([]Surah, len(surahs)),
		byID:   make(map[int]int, len(surahs)),
	}
	copy(c.surahs, surahs)
	for i, s := range c.surahs {
		c.byID[s.ID] = i
	}
	return c
}

// SurahByID returns the surah with the given id, or nil when the id is not in
// the catalog. An unknown id is an expected lookup miss, not an error.
func (c *Catalog) SurahByID(id int) *Surah {
	idx, ok := c.byID[id]
	if !ok {
		return nil
	}
	surah := c.surahs[idx]
	return &surah
}

// Surahs returns a copy of the catalog in order.
func (c *Catalog) Surahs() []Surah {
	out := make([]Surah, len(c.surahs))
	copy(out, c.surahs)
	return out
}

func (c *Catalog) Len() int {
	return len(c.surahs)
}
