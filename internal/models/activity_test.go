package models

import "testing"

func TestValidAction(t *testing.T) {
	valid := []ActivityAction{
		ActionLogin,
		ActionReviewCreate,
		ActionWatchlistAdd,
		ActionWatchlistRemove,
		ActionReviewLike,
		ActionReviewDislike,
		ActionProfileUpdate,
		ActionMarkWatched,
		ActionWatchedEpisode,
	}
	for _, a := range valid {
		if !ValidAction(a) {
			t.Errorf("ValidAction(%q) = false, want true", a)
		}
	}

	invalid := []ActivityAction{"", "logout", "watchlist_clear", "LOGIN"}
	for _, a := range invalid {
		if ValidAction(a) {
			t.Errorf("ValidAction(%q) = true, want false", a)
		}
	}
}
