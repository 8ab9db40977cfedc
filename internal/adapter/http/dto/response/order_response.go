package response

import (
	"time"

	"kanalsepet/internal/domain/entities"
)

type OrderItemResponse struct {
	ID         string            `json:"id"`
	Key        string            `json:"key"`
	Label      string            `json:"label"`
	URL        string            `json:"url"`
	Material   string            `json:"material"`
	Quantity   int               `json:"quantity"`
	Parameters entities.ParamMap `json:"parameters"`
	Thumbnail  string            `json:"thumbnail,omitempty"`
	Note       string            `json:"note"`
	CreatedAt  time.Time         `json:"created_at"`
}

type OrderSheetResponse struct {
	ProjectName string              `json:"project_name"`
	ZoneName    string              `json:"zone_name"`
	Items       []OrderItemResponse `json:"items"`
	Summary     SummaryResponse     `json:"summary"`
}

type SummaryResponse struct {
	ItemCount     int    `json:"item_count"`
	TotalQuantity int    `json:"total_quantity"`
	BadgeText     string `json:"badge_text"`
}

func FromOrderItem(it entities.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:         it.ID,
		Key:        it.Key,
		Label:      it.Label,
		URL:        it.URL,
		Material:   it.Material,
		Quantity:   it.Quantity,
		Parameters: it.Parameters,
		Thumbnail:  it.Thumbnail,
		Note:       it.Note,
		CreatedAt:  it.CreatedAt,
	}
}

func FromOrderSheet(sheet entities.OrderSheet) OrderSheetResponse {
	items := make([]OrderItemResponse, 0, len(sheet.Items))
	for _, it := range sheet.Items {
		items = append(items, FromOrderItem(it))
	}
	return OrderSheetResponse{
		ProjectName: sheet.ProjectName,
		ZoneName:    sheet.ZoneName,
		Items:       items,
		Summary:     FromSummary(sheet.Summary(), sheet.BadgeText()),
	}
}

func FromSummary(sum entities.Summary, badge string) SummaryResponse {
	return SummaryResponse{
		ItemCount:     sum.ItemCount,
		TotalQuantity: sum.TotalQuantity,
		BadgeText:     badge,
	}
}
