package request

type GuestInput struct {
	Name  string `json:"name"`
	Birth string `json:"birth"`
}

type CreateReservationRequest struct {
	Hotel        string       `json:"hotel"`
	RoomType     string       `json:"room_type"`
	CheckIn      string       `json:"checkin"`
	CheckOut     string       `json:"checkout"`
	ContactEmail string       `json:"contact_email"`
	Guests       []GuestInput `json:"guests"`
}

type SearchReservationRequest struct {
	Code  string `json:"code"`
	Email string `json:"email"`
}

// ConfirmationRequest identifies a reservation at the front desk for
// check-in and check-out.
type ConfirmationRequest struct {
	ConfirmationCode string `json:"confirmation_code"`
}
