package utils

// TotalFare multiplies the per-seat fare by the number of seats.
// Negative inputs are clamped to zero so a bad catalog entry can
// never produce a negative charge.
func TotalFare(perSeat int64, seatCount int) int64 {
	if perSeat < 0 || seatCount < 0 {
		return 0
	}
	return perSeat * int64(seatCount)
}
