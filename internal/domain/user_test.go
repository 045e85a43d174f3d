package domain

import "testing"

func TestIsAllowedSeekerCountry(t *testing.T) {
	tests := []struct {
		name    string
		country string
		want    bool
	}{
		{"exact lowercase", "kenya", true},
		{"capitalized", "Kenya", true},
		{"uppercase", "KENYA", true},
		{"surrounding whitespace", "  Kenya  ", true},
		{"other country", "Uganda", false},
		{"substring only", "Kenyan", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAllowedSeekerCountry(tt.country); got != tt.want {
				t.Errorf("IsAllowedSeekerCountry(%q) = %v, want %v", tt.country, got, tt.want)
			}
		})
	}
}

func TestParseUserType(t *testing.T) {
	tests := []struct {
		input   string
		want    UserType
		wantErr bool
	}{
		{"jobseeker", UserTypeJobSeeker, false},
		{"employer", UserTypeEmployer, false},
		{"admin", "", true},
		{"Employer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseUserType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseUserType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUserType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUserRoleHelpers(t *testing.T) {
	seeker := &User{UserType: UserTypeJobSeeker}
	if !seeker.IsJobSeeker() || seeker.IsEmployer() {
		t.Error("jobseeker role helpers disagree")
	}

	employer := &User{UserType: UserTypeEmployer}
	if !employer.IsEmployer() || employer.IsJobSeeker() {
		t.Error("employer role helpers disagree")
	}
}
