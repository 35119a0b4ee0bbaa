package client

// Owns reports whether user is the owner behind ref. It accepts the two
// shapes the backend emits for owner/author fields: a bare id or an
// embedded object, both of which decode into Ref.
func Owns(user *User, ref Ref) bool {
	if user == nil || user.ID == "" {
		return false
	}
	return ref.ID == user.ID
}

// OwnsPost reports whether user authored the post.
func OwnsPost(user *User, p *Post) bool {
	return p != nil && Owns(user, p.Author)
}

// OwnsPet reports whether user owns the pet.
func OwnsPet(user *User, p *Pet) bool {
	return p != nil && Owns(user, p.Owner)
}
