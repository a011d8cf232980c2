package jobs

import (
	"log"
	"time"

	"github.com/rzkibhtrafnd/Booking-API/database"
	"github.com/rzkibhtrafnd/Booking-API/repositories"
	"github.com/rzkibhtrafnd/Booking-API/services"
)

// ReleaseCheckedOutRooms is the cron entrypoint: it restores ledger capacity
// for bookings whose stay has ended as of today.
func ReleaseCheckedOutRooms() {
	log.Println("Running job: ReleaseCheckedOutRooms...")

	result, err := RunRelease(time.Now())
	if err != nil {
		log.Printf("Error releasing checked-out rooms: %v", err)
		return
	}

	if result.BookingsReleased == 0 {
		log.Println("No checked-out bookings to release.")
		return
	}

	log.Printf("Released %d booking(s) across %d room(s).", result.BookingsReleased, result.RoomsUpdated)
}

func RunRelease(asOf time.Time) (*services.ReleaseResult, error) {
	svc := services.NewReleaseService(repositories.NewGormStore(database.DB), services.SystemClock())
	return svc.RunNightlyRelease(asOf)
}
