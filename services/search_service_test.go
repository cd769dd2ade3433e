package services

import "testing"

func TestNormalizeKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cà Phê Sữa Đá", "ca phe sua da"},
		{"  Trà Đào  ", "tra dao"},
		{"banh mi", "banh mi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKeyword(tt.in); got != tt.want {
			t.Errorf("NormalizeKeyword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchScore(t *testing.T) {
	// Trùng sau khi bỏ dấu thì điểm tuyệt đối
	if got := MatchScore("Cà Phê", "ca phe"); got != 1 {
		t.Errorf("MatchScore trùng sau chuẩn hóa = %v, want 1", got)
	}
	if got := MatchScore("", ""); got != 1 {
		t.Errorf("MatchScore hai chuỗi rỗng = %v, want 1", got)
	}

	// "banh" vs "bane": khoảng cách 1 trên độ dài 4 => 0.75
	if got := MatchScore("banh", "bane"); got != 0.75 {
		t.Errorf("MatchScore(banh, bane) = %v, want 0.75", got)
	}

	// Khác hoàn toàn thì điểm thấp
	if got := MatchScore("abcd", "wxyz"); got != 0 {
		t.Errorf("MatchScore(abcd, wxyz) = %v, want 0", got)
	}
}
