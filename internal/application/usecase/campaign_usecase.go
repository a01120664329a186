package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/domain/listquery"
	"github.com/jhoicas/resto-admin-api/internal/domain/repository"
)

// CampaignUseCase operaciones sobre campañas de marketing. Los contadores de
// envío nacen en cero.
type CampaignUseCase struct {
	repo repository.CampaignRepository
	gw   *Gateway
}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase(repo repository.CampaignRepository, gw *Gateway) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, gw: gw}
}

var campaignComparators = listquery.Comparators[*entity.Campaign]{
	"id":       func(a, b *entity.Campaign) int { return listquery.CompareStrings(a.ID, b.ID) },
	"name":     func(a, b *entity.Campaign) int { return listquery.CompareStrings(a.Name, b.Name) },
	"status":   func(a, b *entity.Campaign) int { return listquery.CompareStrings(string(a.Status), string(b.Status)) },
	"type":     func(a, b *entity.Campaign) int { return listquery.CompareStrings(string(a.Type), string(b.Type)) },
	"audience": func(a, b *entity.Campaign) int { return listquery.CompareStrings(a.Audience, b.Audience) },
	"sent":     func(a, b *entity.Campaign) int { return listquery.CompareInts(a.Sent, b.Sent) },
	"opened":   func(a, b *entity.Campaign) int { return listquery.CompareInts(a.Opened, b.Opened) },
	"clicked":  func(a, b *entity.Campaign) int { return listquery.CompareInts(a.Clicked, b.Clicked) },
	"date":     func(a, b *entity.Campaign) int { return listquery.CompareStrings(a.Date, b.Date) },
}

// List lista campañas. Search busca por subcadena en el nombre y la audiencia.
func (uc *CampaignUseCase) List(ctx context.Context, f dto.CampaignFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.CampaignResponse]] {
	defer observeList("campaign", time.Now())

	campaigns, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.CampaignResponse]](err)
	}

	var preds []listquery.Predicate[*entity.Campaign]
	if f.Status != "" {
		preds = append(preds, func(c *entity.Campaign) bool { return string(c.Status) == f.Status })
	}
	if f.Type != "" {
		preds = append(preds, func(c *entity.Campaign) bool { return string(c.Type) == f.Type })
	}
	if f.Search != "" {
		preds = append(preds, func(c *entity.Campaign) bool {
			return listquery.ContainsFold(c.Name, f.Search) || listquery.ContainsFold(c.Audience, f.Search)
		})
	}

	page := listquery.Apply(campaigns, f.ListParams(), preds, campaignComparators)
	items := make([]*dto.CampaignResponse, 0, len(page.Items))
	for _, c := range page.Items {
		items = append(items, dto.NewCampaignResponse(c))
	}
	return dto.OK(&dto.PaginatedResponse[*dto.CampaignResponse]{
		Items:       items,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "campañas obtenidas", http.StatusOK)
}

// GetByID obtiene una campaña por ID.
func (uc *CampaignUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.CampaignResponse] {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.CampaignResponse](err)
	}
	if c == nil {
		return failure[*dto.CampaignResponse](domain.ErrNotFound)
	}
	return dto.OK(dto.NewCampaignResponse(c), "campaña obtenida", http.StatusOK)
}

// Create crea una campaña con contadores en cero.
func (uc *CampaignUseCase) Create(ctx context.Context, actor string, in dto.CampaignRequest) *dto.ResponseModel[*dto.CampaignResponse] {
	c, err := newCampaign(in)
	if err != nil {
		uc.gw.mutation("campaign", "create", err, "")
		return failure[*dto.CampaignResponse](err)
	}
	c.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, c); err != nil {
		uc.gw.mutation("campaign", "create", err, "")
		return failure[*dto.CampaignResponse](err)
	}
	uc.gw.mutation("campaign", "create", nil, "Campaña creada")
	return dto.OK(dto.NewCampaignResponse(c), "campaña creada", http.StatusCreated)
}

// Update actualiza parcialmente una campaña.
func (uc *CampaignUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateCampaignRequest) *dto.ResponseModel[*dto.CampaignResponse] {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("campaign", "update", err, "")
		return failure[*dto.CampaignResponse](err)
	}
	if c == nil {
		uc.gw.mutation("campaign", "update", domain.ErrNotFound, "")
		return failure[*dto.CampaignResponse](domain.ErrNotFound)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			err := fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
			uc.gw.mutation("campaign", "update", err, "")
			return failure[*dto.CampaignResponse](err)
		}
		c.Name = *in.Name
	}
	if in.Status != nil {
		status := entity.CampaignStatus(*in.Status)
		if !status.Valid() {
			err := fmt.Errorf("%w: estado de campaña desconocido %q", domain.ErrInvalidInput, *in.Status)
			uc.gw.mutation("campaign", "update", err, "")
			return failure[*dto.CampaignResponse](err)
		}
		c.Status = status
	}
	if in.Type != nil {
		typ := entity.CampaignType(*in.Type)
		if !typ.Valid() {
			err := fmt.Errorf("%w: canal de campaña desconocido %q", domain.ErrInvalidInput, *in.Type)
			uc.gw.mutation("campaign", "update", err, "")
			return failure[*dto.CampaignResponse](err)
		}
		c.Type = typ
	}
	if in.Audience != nil {
		c.Audience = *in.Audience
	}
	if in.Sent != nil {
		c.Sent = *in.Sent
	}
	if in.Opened != nil {
		c.Opened = *in.Opened
	}
	if in.Clicked != nil {
		c.Clicked = *in.Clicked
	}
	if in.Date != nil {
		c.Date = *in.Date
	}

	c.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, c); err != nil {
		uc.gw.mutation("campaign", "update", err, "")
		return failure[*dto.CampaignResponse](err)
	}
	uc.gw.mutation("campaign", "update", nil, "Campaña actualizada")
	return dto.OK(dto.NewCampaignResponse(c), "campaña actualizada", http.StatusOK)
}

// Delete elimina una campaña por ID.
func (uc *CampaignUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("campaign", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("campaign", "delete", nil, "Campaña eliminada")
	return dto.OK(true, "campaña eliminada", http.StatusOK)
}

func newCampaign(in dto.CampaignRequest) (*entity.Campaign, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	status := entity.CampaignStatus(in.Status)
	if in.Status == "" {
		status = entity.CampaignStatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado de campaña desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	typ := entity.CampaignType(in.Type)
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: canal de campaña desconocido %q", domain.ErrInvalidInput, in.Type)
	}
	return &entity.Campaign{
		Name:     in.Name,
		Status:   status,
		Type:     typ,
		Audience: in.Audience,
		Date:     in.Date,
	}, nil
}
