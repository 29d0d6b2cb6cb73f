package domain

type Address struct {
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zipCode"`
}

// User is the mocked session account. It is never checked against a backend.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone,omitempty"`
	BirthDate *string  `json:"birthDate,omitempty"`
	Gender    *string  `json:"gender,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Phone     *string
	BirthDate *string
	Gender    *string
}

// ProfileUpdate is a partial user record; nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string
	Email     *string
	Phone     *string
	BirthDate *string
	Gender    *string
	Address   *Address
}

// Apply merges the non-nil fields of p into u and returns the result.
func (p ProfileUpdate) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
	if p.BirthDate != nil {
		u.BirthDate = p.BirthDate
	}
	if p.Gender != nil {
		u.Gender = p.Gender
	}
	if p.Address != nil {
		addr := *p.Address
		u.Address = &addr
	}
	return u
}

// Clone returns a deep copy of u.
func (u User) Clone() User {
	u.Phone = clonePtr(u.Phone)
	u.BirthDate = clonePtr(u.BirthDate)
	u.Gender = clonePtr(u.Gender)
	if u.Address != nil {
		a := *u.Address
		a.Complement = clonePtr(a.Complement)
		u.Address = &a
	}
	return u
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
