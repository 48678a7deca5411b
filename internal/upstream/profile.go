package upstream

import "context"

// Profile is the seeker profile as returned by GET /api/userprofile.
// The backend responds in snake_case; updates go back in camelCase (see
// ProfileUpdate).
type Profile struct {
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Country           string    `json:"country"`
	PreferredLocation string    `json:"preferred_location"`
	Age               Stringish `json:"age"`
	Gender            string    `json:"gender"`
	JobType           string    `json:"job_type"`
	ExpectedSalary    Stringish `json:"expected_salary"`
	ProfileSummary    string    `json:"profile_summary"`
	ResumeURL         string    `json:"resume_url"`
	PhotoURL          string    `json:"photo_url"`
}

// ProfileUpdate is the PUT /api/userprofile body. Keys are camelCase, distinct
// from the snake_case GET response.
type ProfileUpdate struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	City              string `json:"city"`
	State             string `json:"state"`
	Country           string `json:"country"`
	PreferredLocation string `json:"preferredLocation"`
	Age               string `json:"age"`
	Gender            string `json:"gender"`
	JobType           string `json:"jobType"`
	ExpectedSalary    string `json:"expectedSalary"`
	ProfileSummary    string `json:"profileSummary"`
}

// GetProfile fetches the seeker's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (Profile, error) {
	var profile Profile
	if err := c.getJSON(ctx, token, "/api/userprofile", nil, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// UpdateProfile writes the seeker's basic info.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) error {
	return c.sendJSON(ctx, "PUT", "/api/userprofile", token, update, nil)
}
