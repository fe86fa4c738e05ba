package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		perPage   int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{name: "empty result", total: 0, page: 1, perPage: 20, wantPages: 0},
		{name: "single partial page", total: 5, page: 1, perPage: 20, wantPages: 1},
		{name: "exact multiple", total: 40, page: 1, perPage: 20, wantPages: 2, wantNext: true},
		{name: "middle page", total: 25, page: 2, perPage: 10, wantPages: 3, wantNext: true, wantPrev: true},
		{name: "last page", total: 25, page: 3, perPage: 10, wantPages: 3, wantPrev: true},
		{name: "page past the end", total: 25, page: 7, perPage: 10, wantPages: 3, wantPrev: true},
		{name: "one per page", total: 3, page: 1, perPage: 1, wantPages: 3, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.total, tt.page, tt.perPage)

			assert.Equal(t, tt.page, got.CurrentPage)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Equal(t, tt.total, got.TotalItems)
			assert.Equal(t, tt.perPage, got.ItemsPerPage)
			assert.Equal(t, tt.wantNext, got.HasNext)
			assert.Equal(t, tt.wantPrev, got.HasPrev)
		})
	}
}

func TestTotalPagesMatchesCeiling(t *testing.T) {
	for total := int64(0); total <= 250; total++ {
		for perPage := 1; perPage <= 100; perPage += 7 {
			want := int(math.Ceil(float64(total) / float64(perPage)))
			assert.Equal(t, want, TotalPages(total, perPage), "total=%d perPage=%d", total, perPage)

			for page := 1; page <= want+1; page++ {
				got := Compute(total, page, perPage)
				assert.Equal(t, page < want, got.HasNext)
				assert.Equal(t, page > 1, got.HasPrev)
			}
		}
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 20))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 19980, Offset(1000, 20))
	assert.Equal(t, 0, Offset(0, 20))
	assert.Equal(t, 0, Offset(3, 0))
}

func TestOffset_Saturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 10))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt/100+2, 100))
	assert.Equal(t, (math.MaxInt/100)*100, Offset(math.MaxInt/100+1, 100))
}
