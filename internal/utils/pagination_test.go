package utils

import (
	"strconv"
	"testing"
)

func TestConvertPage(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, 30, 2, 3)
	converted := ConvertPage(page, func(v *int) string { return strconv.Itoa(*v * 10) })

	if converted.Total != 30 || converted.PageNum != 2 || converted.PageSize != 3 {
		t.Errorf("pagination metadata should be preserved, got %+v", converted)
	}
	if len(converted.Records) != 3 || converted.Records[0] != "10" || converted.Records[2] != "30" {
		t.Errorf("unexpected converted records: %v", converted.Records)
	}
}

func TestConvertPage_Empty(t *testing.T) {
	page := NewPage([]string{}, 0, 1, 10)
	converted := ConvertPage(page, func(v *string) int { return len(*v) })
	if converted.Records == nil {
		t.Error("empty page should keep a non-nil records slice")
	}
	if len(converted.Records) != 0 {
		t.Errorf("expected no records, got %d", len(converted.Records))
	}
}

func TestPageOffset(t *testing.T) {
	cases := []struct {
		pageNum, pageSize, want int
	}{
		{1, 10, 0},
		{3, 10, 20},
		{0, 10, 0},
	}
	for _, c := range cases {
		p := Page[int]{PageNum: c.pageNum, PageSize: c.pageSize}
		if got := p.Offset(); got != c.want {
			t.Errorf("Offset(%d,%d) = %d, want %d", c.pageNum, c.pageSize, got, c.want)
		}
	}
}
