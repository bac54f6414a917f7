package param

// NewsStream identifies a news feed: the global stream or the stream
// of a single user.
type NewsStream struct {
	userID string
}

// GlobalNews is the global news stream.
func GlobalNews() NewsStream { return NewsStream{} }

// UserNews is the news stream of the user with the given internal ID.
func UserNews(userID string) NewsStream { return NewsStream{userID: userID} }

// String renders the path segment, e.g. "global" or
// "user_621db46d1d638ea850be2aa0".
func (s NewsStream) String() string {
	if s.userID == "" {
		return "global"
	}
	return "user_" + s.userID
}
