package processstep

type StepInput struct {
	StepName    string `json:"stepName" binding:"required"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type CreateGroupRequest struct {
	StepType string      `json:"stepType" binding:"required"`
	Steps    []StepInput `json:"steps" binding:"dive"`
}

type ReplaceGroupRequest struct {
	Steps []StepInput `json:"steps" binding:"dive"`
}

type StepResponse struct {
	ID          string `json:"id"`
	StepType    string `json:"stepType"`
	StepName    string `json:"stepName"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Order       int    `json:"order"`
}

type GroupResponse struct {
	StepType string         `json:"stepType"`
	Steps    []StepResponse `json:"steps"`
}

func mapToResponse(s Step) StepResponse {
	return StepResponse{
		ID:          s.ID.String(),
		StepType:    s.StepType,
		StepName:    s.StepName,
		URL:         s.URL,
		Description: s.Description,
		Status:      s.Status,
		Order:       s.Order,
	}
}

func mapToListResponse(steps []Step) []StepResponse {
	res := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		res = append(res, mapToResponse(s))
	}
	return res
}
