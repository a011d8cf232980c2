package services

import "github.com/rzkibhtrafnd/Booking-API/models"

// nightlyPrice resolves the price of one night: the ledger row's override
// when set, the room's base price otherwise.
func nightlyPrice(room *models.Room, entry *models.RoomAvailability) float64 {
	if entry != nil && entry.CustomPrice != nil {
		return *entry.CustomPrice
	}
	return room.Price
}
