package usecase

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
	"github.com/jhoicas/resto-admin-api/internal/domain/listquery"
	"github.com/jhoicas/resto-admin-api/internal/domain/repository"
)

// Formato internacional fijo: "+NN NNNNNNNNNN".
var phoneRe = regexp.MustCompile(`^\+\d{2} \d{10}$`)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CustomerUseCase operaciones sobre clientes. Toda mutación verifica que el
// grupo referenciado exista; los listados resuelven el grupo denormalizado.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	groups repository.CustomerGroupRepository
	gw     *Gateway
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, groups repository.CustomerGroupRepository, gw *Gateway) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, groups: groups, gw: gw}
}

var customerComparators = listquery.Comparators[*entity.Customer]{
	"id":        func(a, b *entity.Customer) int { return listquery.CompareStrings(a.ID, b.ID) },
	"firstName": func(a, b *entity.Customer) int { return listquery.CompareStrings(a.FirstName, b.FirstName) },
	"lastName":  func(a, b *entity.Customer) int { return listquery.CompareStrings(a.LastName, b.LastName) },
	"emailAddress": func(a, b *entity.Customer) int {
		return listquery.CompareStrings(a.EmailAddress, b.EmailAddress)
	},
	"phoneNumber": func(a, b *entity.Customer) int { return listquery.CompareStrings(a.PhoneNumber, b.PhoneNumber) },
	"gender":      func(a, b *entity.Customer) int { return listquery.CompareStrings(string(a.Gender), string(b.Gender)) },
	"amountDue":   func(a, b *entity.Customer) int { return listquery.CompareDecimals(a.AmountDue, b.AmountDue) },
	"dateOfBirth": func(a, b *entity.Customer) int { return listquery.CompareStrings(a.DateOfBirth, b.DateOfBirth) },
	"customerGroupId": func(a, b *entity.Customer) int {
		return listquery.CompareStrings(a.CustomerGroupID, b.CustomerGroupID)
	},
}

// List lista clientes con filtros, orden y paginación. El filtro Name busca
// solo en nombre y apellido; email y teléfono tienen filtros propios.
func (uc *CustomerUseCase) List(ctx context.Context, f dto.CustomerFilterParams) *dto.ResponseModel[*dto.PaginatedResponse[*dto.CustomerResponse]] {
	defer observeList("customer", time.Now())

	customers, err := uc.repo.List(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.CustomerResponse]](err)
	}

	var preds []listquery.Predicate[*entity.Customer]
	if f.CustomerGroupID != "" {
		preds = append(preds, func(c *entity.Customer) bool { return c.CustomerGroupID == f.CustomerGroupID })
	}
	if f.Name != "" {
		preds = append(preds, func(c *entity.Customer) bool {
			return listquery.ContainsFold(c.FirstName, f.Name) || listquery.ContainsFold(c.LastName, f.Name)
		})
	}
	if f.PhoneNumber != "" {
		preds = append(preds, func(c *entity.Customer) bool {
			return listquery.ContainsFold(c.PhoneNumber, f.PhoneNumber)
		})
	}
	if f.EmailAddress != "" {
		preds = append(preds, func(c *entity.Customer) bool {
			return listquery.ContainsFold(c.EmailAddress, f.EmailAddress)
		})
	}
	if f.Gender != "" {
		preds = append(preds, func(c *entity.Customer) bool { return string(c.Gender) == f.Gender })
	}
	if f.MinAmountDue != nil {
		min := decimal.NewFromFloat(*f.MinAmountDue)
		preds = append(preds, func(c *entity.Customer) bool { return c.AmountDue.GreaterThanOrEqual(min) })
	}
	if f.MaxAmountDue != nil {
		max := decimal.NewFromFloat(*f.MaxAmountDue)
		preds = append(preds, func(c *entity.Customer) bool { return c.AmountDue.LessThanOrEqual(max) })
	}

	page := listquery.Apply(customers, f.ListParams(), preds, customerComparators)

	groupsByID, err := uc.groupIndex(ctx)
	if err != nil {
		return failure[*dto.PaginatedResponse[*dto.CustomerResponse]](err)
	}
	items := make([]*dto.CustomerResponse, 0, len(page.Items))
	for _, c := range page.Items {
		r := dto.NewCustomerResponse(c)
		if g, ok := groupsByID[c.CustomerGroupID]; ok {
			r.CustomerGroup = dto.NewCustomerGroupResponse(g)
		}
		items = append(items, r)
	}
	return dto.OK(&dto.PaginatedResponse[*dto.CustomerResponse]{
		Items:       items,
		TotalCount:  page.TotalCount,
		PageSize:    page.PageSize,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}, "clientes obtenidos", http.StatusOK)
}

// GetByID obtiene un cliente por ID con su grupo resuelto.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) *dto.ResponseModel[*dto.CustomerResponse] {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return failure[*dto.CustomerResponse](err)
	}
	if c == nil {
		return failure[*dto.CustomerResponse](domain.ErrNotFound)
	}
	r := dto.NewCustomerResponse(c)
	if g, err := uc.groups.GetByID(ctx, c.CustomerGroupID); err == nil && g != nil {
		r.CustomerGroup = dto.NewCustomerGroupResponse(g)
	}
	return dto.OK(r, "cliente obtenido", http.StatusOK)
}

// Create crea un cliente. El grupo referenciado debe existir.
func (uc *CustomerUseCase) Create(ctx context.Context, actor string, in dto.CustomerRequest) *dto.ResponseModel[*dto.CustomerResponse] {
	c, err := newCustomer(in)
	if err != nil {
		uc.gw.mutation("customer", "create", err, "")
		return failure[*dto.CustomerResponse](err)
	}
	if err := uc.checkGroup(ctx, c.CustomerGroupID); err != nil {
		uc.gw.mutation("customer", "create", err, "")
		return failure[*dto.CustomerResponse](err)
	}
	c.Stamp(actor, uc.gw.now())
	if err := uc.repo.Insert(ctx, c); err != nil {
		uc.gw.mutation("customer", "create", err, "")
		return failure[*dto.CustomerResponse](err)
	}
	uc.gw.mutation("customer", "create", nil, "Cliente creado")
	return dto.OK(dto.NewCustomerResponse(c), "cliente creado", http.StatusCreated)
}

// Update actualiza parcialmente un cliente. Si el parche referencia un grupo
// inexistente, el registro queda intacto.
func (uc *CustomerUseCase) Update(ctx context.Context, actor, id string, in dto.UpdateCustomerRequest) *dto.ResponseModel[*dto.CustomerResponse] {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.gw.mutation("customer", "update", err, "")
		return failure[*dto.CustomerResponse](err)
	}
	if c == nil {
		uc.gw.mutation("customer", "update", domain.ErrNotFound, "")
		return failure[*dto.CustomerResponse](domain.ErrNotFound)
	}

	patched := c.Clone()
	if err := applyCustomerPatch(patched, in); err != nil {
		uc.gw.mutation("customer", "update", err, "")
		return failure[*dto.CustomerResponse](err)
	}
	if err := uc.checkGroup(ctx, patched.CustomerGroupID); err != nil {
		uc.gw.mutation("customer", "update", err, "")
		return failure[*dto.CustomerResponse](err)
	}

	patched.Touch(actor, uc.gw.now())
	if err := uc.repo.Update(ctx, patched); err != nil {
		uc.gw.mutation("customer", "update", err, "")
		return failure[*dto.CustomerResponse](err)
	}
	uc.gw.mutation("customer", "update", nil, "Cliente actualizado")
	return dto.OK(dto.NewCustomerResponse(patched), "cliente actualizado", http.StatusOK)
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) *dto.ResponseModel[bool] {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.gw.mutation("customer", "delete", err, "")
		return failure[bool](err)
	}
	uc.gw.mutation("customer", "delete", nil, "Cliente eliminado")
	return dto.OK(true, "cliente eliminado", http.StatusOK)
}

func (uc *CustomerUseCase) groupIndex(ctx context.Context) (map[string]*entity.CustomerGroup, error) {
	groups, err := uc.groups.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.CustomerGroup, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}
	return byID, nil
}

func (uc *CustomerUseCase) checkGroup(ctx context.Context, groupID string) error {
	g, err := uc.groups.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.ErrGroupNotFound
	}
	return nil
}

func newCustomer(in dto.CustomerRequest) (*entity.Customer, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.LastName) == "" {
		return nil, fmt.Errorf("%w: el apellido es obligatorio", domain.ErrInvalidInput)
	}
	if !phoneRe.MatchString(in.PhoneNumber) {
		return nil, fmt.Errorf("%w: el teléfono debe tener el formato +NN NNNNNNNNNN", domain.ErrInvalidInput)
	}
	if !emailRe.MatchString(in.EmailAddress) {
		return nil, fmt.Errorf("%w: el email no es válido", domain.ErrInvalidInput)
	}
	gender := entity.Gender(in.Gender)
	if !gender.Valid() {
		return nil, fmt.Errorf("%w: género desconocido %q", domain.ErrInvalidInput, in.Gender)
	}
	if in.AmountDue.IsNegative() {
		return nil, fmt.Errorf("%w: el monto adeudado no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.CustomerGroupID == "" {
		return nil, fmt.Errorf("%w: el grupo de clientes es obligatorio", domain.ErrInvalidInput)
	}
	return &entity.Customer{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		PhoneNumber:     in.PhoneNumber,
		EmailAddress:    in.EmailAddress,
		Gender:          gender,
		DateOfBirth:     in.DateOfBirth,
		AnniversaryDate: in.AnniversaryDate,
		Address:         in.Address,
		CompanyName:     in.CompanyName,
		CompanyAddress:  in.CompanyAddress,
		GSTNumber:       in.GSTNumber,
		TaxStateCode:    in.TaxStateCode,
		AmountDue:       in.AmountDue,
		CustomerGroupID: in.CustomerGroupID,
	}, nil
}

func applyCustomerPatch(c *entity.Customer, in dto.UpdateCustomerRequest) error {
	if in.FirstName != nil {
		if strings.TrimSpace(*in.FirstName) == "" {
			return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
		}
		c.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if strings.TrimSpace(*in.LastName) == "" {
			return fmt.Errorf("%w: el apellido es obligatorio", domain.ErrInvalidInput)
		}
		c.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		if !phoneRe.MatchString(*in.PhoneNumber) {
			return fmt.Errorf("%w: el teléfono debe tener el formato +NN NNNNNNNNNN", domain.ErrInvalidInput)
		}
		c.PhoneNumber = *in.PhoneNumber
	}
	if in.EmailAddress != nil {
		if !emailRe.MatchString(*in.EmailAddress) {
			return fmt.Errorf("%w: el email no es válido", domain.ErrInvalidInput)
		}
		c.EmailAddress = *in.EmailAddress
	}
	if in.Gender != nil {
		gender := entity.Gender(*in.Gender)
		if !gender.Valid() {
			return fmt.Errorf("%w: género desconocido %q", domain.ErrInvalidInput, *in.Gender)
		}
		c.Gender = gender
	}
	if in.DateOfBirth != nil {
		c.DateOfBirth = *in.DateOfBirth
	}
	if in.AnniversaryDate != nil {
		c.AnniversaryDate = *in.AnniversaryDate
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.CompanyName != nil {
		c.CompanyName = *in.CompanyName
	}
	if in.CompanyAddress != nil {
		c.CompanyAddress = *in.CompanyAddress
	}
	if in.GSTNumber != nil {
		c.GSTNumber = *in.GSTNumber
	}
	if in.TaxStateCode != nil {
		c.TaxStateCode = *in.TaxStateCode
	}
	if in.AmountDue != nil {
		if in.AmountDue.IsNegative() {
			return fmt.Errorf("%w: el monto adeudado no puede ser negativo", domain.ErrInvalidInput)
		}
		c.AmountDue = *in.AmountDue
	}
	if in.CustomerGroupID != nil {
		c.CustomerGroupID = *in.CustomerGroupID
	}
	return nil
}
