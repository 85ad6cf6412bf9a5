package datatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		current, pages int
		want           Pagination
	}{
		{name: "valid", current: 2, pages: 5, want: Pagination{CurrentPage: 2, NumberOfPages: 5}},
		{name: "zero pages", current: 1, pages: 0, want: Pagination{CurrentPage: 1, NumberOfPages: 0}},
		{name: "zero current", current: 0, pages: 3, want: Pagination{CurrentPage: 1, NumberOfPages: 3}},
		{name: "beyond last", current: 9, pages: 3, want: Pagination{CurrentPage: 3, NumberOfPages: 3}},
		{name: "negative pages", current: 4, pages: -1, want: Pagination{CurrentPage: 1, NumberOfPages: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.current, tt.pages)
			require.Equal(t, tt.want, got)
			require.GreaterOrEqual(t, got.CurrentPage, 1)
			require.LessOrEqual(t, got.CurrentPage, max(got.NumberOfPages, 1))
		})
	}
}

func TestPagination_PageNumbers(t *testing.T) {
	require.Equal(t, []int{1}, Pagination{CurrentPage: 1}.PageNumbers(5))
	require.Equal(t, []int{1, 2, 3}, Pagination{CurrentPage: 1, NumberOfPages: 3}.PageNumbers(0))
	require.Equal(t, []int{3, 4, 5, 6, 7}, Pagination{CurrentPage: 5, NumberOfPages: 10}.PageNumbers(5))
	require.Equal(t, []int{6, 7, 8, 9, 10}, Pagination{CurrentPage: 10, NumberOfPages: 10}.PageNumbers(5))
	require.Equal(t, []int{1, 2, 3, 4, 5}, Pagination{CurrentPage: 1, NumberOfPages: 10}.PageNumbers(5))
}

func TestPaginationControl_ChangePageTo(t *testing.T) {
	var changed []int
	c := PaginationControl{
		Pagination:   NewPagination(2, 4),
		OnPageChange: func(page int) { changed = append(changed, page) },
	}
	require.True(t, c.ChangePageTo(3))
	require.False(t, c.ChangePageTo(2), "current page")
	require.True(t, c.ChangePageTo(99))
	require.True(t, c.ChangePageTo(-1))
	require.Equal(t, []int{3, 4, 1}, changed)

	require.True(t, c.HasPrevious())
	require.True(t, c.HasNext())
}

func TestPageCountAndPaginate(t *testing.T) {
	records := make([]Record, 7)
	for i := range records {
		records[i] = Record{"i": i}
	}
	require.Equal(t, 3, PageCount(len(records), 3))
	require.Equal(t, 0, PageCount(0, 3))
	require.Equal(t, 0, PageCount(5, 0))

	require.Len(t, Paginate(records, 1, 3), 3)
	require.Equal(t, Record{"i": 6}, Paginate(records, 3, 3)[0])
	require.Len(t, Paginate(records, 3, 3), 1)
	require.Nil(t, Paginate(records, 4, 3))
	require.Nil(t, Paginate(records, 0, 3))
	require.Len(t, Paginate(records, 1, 0), 7)
}
