package alert

import "time"

// Input describes one alert to dispatch.
type Input struct {
	UserID  string
	Message string
	Type    string
	RefID   string
}

type AlertResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	RefID     string    `json:"refId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type CountResponse struct {
	Affected int64 `json:"affected"`
}

func mapToResponse(a Alert) AlertResponse {
	return AlertResponse{
		ID:        a.ID.Hex(),
		UserID:    a.UserID,
		Message:   a.Message,
		Type:      a.Type,
		RefID:     a.RefID,
		Read:      a.Read,
		CreatedAt: a.CreatedAt,
	}
}

func mapToListResponse(alerts []Alert) []AlertResponse {
	res := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		res = append(res, mapToResponse(a))
	}
	return res
}
