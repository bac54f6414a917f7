package param

// SocialConnection identifies an account on an external service linked
// to a TETR.IO account. The upstream API currently only resolves
// Discord connections; more providers are slated on their side.
type SocialConnection struct {
	provider string
	id       string
}

// Discord identifies an account by Discord ID.
func Discord(id string) SocialConnection {
	return SocialConnection{provider: "discord", id: id}
}

// String renders the search path segment, e.g.
// "discord:724976600873041940".
func (c SocialConnection) String() string {
	return c.provider + ":" + c.id
}
