package catalog

// Catalog is the read-only lookup over the static exercise content.
// Loaded once at startup, never mutated afterwards.
type Catalog struct {
	records []ExerciseRecord
	byID    map[string]int
}

func New() *Catalog {
	return newWithRecords(defaultRecords)
}

func newWithRecords(records []ExerciseRecord) *Catalog {
	byID := make(map[string]int, len(records))
	for i, rec := range records {
		byID[rec.ID] = i
	}
	return &Catalog{
		records: records,
		byID:    byID,
	}
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns the records in pinned catalog order.
// Callers must not modify the returned slice.
func (c *Catalog) All() []ExerciseRecord {
	return c.records
}

func (c *Catalog) Get(id string) (ExerciseRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ExerciseRecord{}, false
	}
	return c.records[i], true
}

// Resolve maps exercise ids to records, silently skipping ids no longer
// in the catalog. The result may therefore be shorter than the input -
// a dangling id is tolerated, never an error.
func (c *Catalog) Resolve(ids []string) []ExerciseRecord {
	resolved := make([]ExerciseRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := c.Get(id); ok {
			resolved = append(resolved, rec)
		}
	}
	return resolved
}

// TotalDurationSeconds sums the duration of all resolvable ids.
func (c *Catalog) TotalDurationSeconds(ids []string) int {
	var total int
	for _, rec := range c.Resolve(ids) {
		total += rec.DurationSeconds
	}
	return total
}
