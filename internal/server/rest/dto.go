package rest

import (
	"itemvault/internal/server/models"
	"itemvault/internal/server/repositories/items"
	"itemvault/internal/server/services"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// userResponse is the public view of a user. The password hash never leaves
// the server.
type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

type itemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
}

type itemWithOwnerResponse struct {
	itemResponse
	OwnerName string `json:"owner_name"`
}

type userWithItemsResponse struct {
	userResponse
	Items []itemResponse `json:"items"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Bio: u.Bio}
}

func toItemResponse(i *models.Item) itemResponse {
	return itemResponse{ID: i.ID, Name: i.Name, Description: i.Description, UserID: i.UserID}
}

func toItemResponses(list []*models.Item) []itemResponse {
	out := make([]itemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toItemResponse(i))
	}
	return out
}

func toItemWithOwnerResponses(list []*items.ItemWithOwner) []itemWithOwnerResponse {
	out := make([]itemWithOwnerResponse, 0, len(list))
	for _, i := range list {
		out = append(out, itemWithOwnerResponse{itemResponse: toItemResponse(&i.Item), OwnerName: i.OwnerName})
	}
	return out
}

func toUserWithItemsResponse(u *services.UserWithItems) userWithItemsResponse {
	return userWithItemsResponse{userResponse: toUserResponse(u.User), Items: toItemResponses(u.Items)}
}
