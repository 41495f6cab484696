package usecase

import "github.com/Chidozie222/Hackathon-sub000/internal/domain"

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) GetOrdersBySellerID(sellerID string) ([]*domain.Order, error) {
	return uc.OrderRepo.GetOrdersBySellerID(sellerID)
}

func (uc *DefaultOrderUsecase) GetOrdersByCourierID(courierID string) ([]*domain.Order, error) {
	return uc.OrderRepo.GetOrdersByCourierID(courierID)
}

func (uc *DefaultOrderUsecase) GetAvailableOrders() ([]*domain.Order, error) {
	return uc.OrderRepo.GetAvailableOrders()
}
