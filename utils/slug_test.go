package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Trang Chủ", "trang-chu"},
		{"Cà Phê Sữa Đá", "ca-phe-sua-da"},
		{"Khách sạn Đà Nẵng 5 sao!", "khach-san-da-nang-5-sao"},
		{"  nhiều   khoảng   trắng  ", "nhieu-khoang-trang"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
