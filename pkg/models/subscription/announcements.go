package subscription

import "gitlab.heather.loc/helios/deribit/pkg/models"

type AnnouncementsData struct {
	Action               string           `json:"action"`
	Body                 string           `json:"body"`
	ID                   uint64           `json:"id"`
	Important            bool             `json:"important"`
	PublicationTimestamp models.Timestamp `json:"publication_timestamp"`
	Title                string           `json:"title"`
}

func (a *AnnouncementsData) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, "action", "body", "id", "important", "publication_timestamp", "title"); err != nil {
		return err
	}
	type plain AnnouncementsData
	return models.DecodePlain(data, (*plain)(a))
}
