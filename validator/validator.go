package validator

import (
	"strings"

	"homestay/dto"
	"homestay/errors"
	"homestay/occupancy"
)

// ValidateRoom validate thông tin phòng trước khi ghi
func ValidateRoom(code, name string, capacity int) error {
	if strings.TrimSpace(code) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã phòng không được để trống", nil)
	}
	if strings.TrimSpace(name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}
	if capacity < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidCapacity, "Sức chứa phải ít nhất là 1", nil)
	}
	return nil
}

// ValidateStay validate thông tin stay trước khi ghi. Ràng buộc
// checkOut > checkIn được ép tại đây, tầng input; phần core chỉ phòng thủ
// với dữ liệu cũ đã hỏng chứ không validate lại.
func ValidateStay(req *dto.StayRequest) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if !occupancy.ValidDate(req.CheckInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "checkInDate phải có dạng YYYY-MM-DD", nil)
	}
	if !occupancy.ValidDate(req.CheckOutDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "checkOutDate phải có dạng YYYY-MM-DD", nil)
	}
	if req.CheckOutDate <= req.CheckInDate {
		return errors.NewAppError(errors.ErrCodeInvalidInterval, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	phone, err := NormalizePhone(req.GuestPhone)
	if err != nil {
		return err
	}
	req.GuestPhone = phone
	return nil
}

// NormalizePhone bỏ khoảng trắng và ký tự phân tách, chỉ giữ chữ số.
// Số điện thoại là tùy chọn: chuỗi rỗng hợp lệ.
func NormalizePhone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.' || r == '+':
			// ký tự trình bày, bỏ qua
		default:
			return "", errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại chỉ được chứa chữ số", nil)
		}
	}
	if b.Len() == 0 {
		return "", errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return b.String(), nil
}
