package dto

// UserEnvelope tags profile responses so the client never has to sniff the
// payload shape: "own" carries email and watchlist, "public" omits them.
type UserEnvelope struct {
	Kind string       `json:"kind"`
	User UserResponse `json:"user"`
}

const (
	UserKindOwn    = "own"
	UserKindPublic = "public"
)

type UpdateProfileRequest struct {
	Bio            *string `json:"bio" validate:"omitempty,max=200"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url"`
}
