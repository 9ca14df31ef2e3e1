//go:build unit || e2e

package builder

import (
	domguest "dozzze-checkout/internal/domain/guest"
	reqdto "dozzze-checkout/internal/handler/dto/request"
	"dozzze-checkout/internal/usecase/commands"
)

type GuestBuilder struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	PostalCode string
	Remarks    string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		Name:       "Maria Dolores",
		Email:      "maria@example.com",
		Phone:      "+34 600 123 456",
		Address:    "Calle Mayor 1",
		PostalCode: "28013",
		Remarks:    "Late arrival",
	}
}

func (b *GuestBuilder) BuildDomain() domguest.Details {
	return domguest.NewDetails(b.Name, b.Email, b.Phone, b.Address, b.PostalCode, b.Remarks)
}

func (b *GuestBuilder) BuildInput() commands.GuestDetailsInput {
	return commands.GuestDetailsInput{
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Address:    b.Address,
		PostalCode: b.PostalCode,
		Remarks:    b.Remarks,
	}
}

func (b *GuestBuilder) BuildRequestDTO() reqdto.GuestRequest {
	return reqdto.GuestRequest{
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Address:    b.Address,
		PostalCode: b.PostalCode,
		Remarks:    b.Remarks,
	}
}

func (b *GuestBuilder) WithName(name string) *GuestBuilder {
	b.Name = name
	return b
}

func (b *GuestBuilder) WithEmail(email string) *GuestBuilder {
	b.Email = email
	return b
}

func (b *GuestBuilder) WithPhone(phone string) *GuestBuilder {
	b.Phone = phone
	return b
}

func (b *GuestBuilder) WithPostalCode(postal string) *GuestBuilder {
	b.PostalCode = postal
	return b
}

func (b *GuestBuilder) WithRemarks(remarks string) *GuestBuilder {
	b.Remarks = remarks
	return b
}
