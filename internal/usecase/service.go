package usecase

import (
	"go.uber.org/zap"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"
)

type Service struct {
	Booking BookingService
	Payment PaymentService
	Support SupportService
	Hotel   HotelService
}

func NewService(repo *repository.Repository, gateway PaymentGateway, mail Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo.Booking, log),
		Payment: NewPaymentService(repo.Booking, gateway, config, log),
		Support: NewSupportService(mail, config, log),
		Hotel:   NewHotelService(repo.Hotel, log),
	}
}
