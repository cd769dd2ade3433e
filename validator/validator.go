package validator

import (
	"regexp"
	"time"

	"builder/constants"
	"builder/dto"
	"builder/errors"
	"builder/models"

	json "github.com/goccy/go-json"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *dto.RoomRequest) error {
	if room.RoomName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}

	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng không được âm", nil)
	}

	if room.People < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số người không được âm", nil)
	}

	return nil
}

// ValidateReservation validate request đặt phòng, trả về ngày đã parse
func ValidateReservation(req *dto.ReservationRequest) (time.Time, time.Time, error) {
	if req.RoomID == 0 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	checkIn, err := time.Parse("02/01/2006", req.CheckInDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse("02/01/2006", req.CheckOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if req.CustomerID == nil {
		if req.GuestName == "" {
			return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if req.GuestPhone != "" && !isValidPhone(req.GuestPhone) {
			return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
		}
		if req.GuestEmail != "" && !isValidEmail(req.GuestEmail) {
			return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
		}
	}

	return checkIn, checkOut, nil
}

// ValidateDateRange parse và kiểm tra khoảng ngày dạng dd/mm/yyyy
func ValidateDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse("02/01/2006", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	to, err := time.Parse("02/01/2006", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	return from, to, nil
}

// ValidateRule validate rule đặt phòng, gồm cả params theo từng loại rule
func ValidateRule(req *dto.RuleRequest) error {
	switch req.RuleType {
	case constants.RuleTypeMinNights:
		var p models.MinNightsParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Tham số rule không hợp lệ", err)
		}
		if p.MinNights < 1 {
			return errors.NewAppError(errors.ErrCodeValidation, "Số đêm tối thiểu phải lớn hơn 0", nil)
		}
	case constants.RuleTypeNoCheckinDays:
		var p models.NoCheckinDaysParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Tham số rule không hợp lệ", err)
		}
		if len(p.Days) == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Danh sách ngày cấm nhận phòng không được để trống", nil)
		}
		for _, d := range p.Days {
			if d < 0 || d > 6 {
				return errors.NewAppError(errors.ErrCodeValidation, "Ngày trong tuần phải từ 0 đến 6", nil)
			}
		}
	case constants.RuleTypeAdvanceBooking:
		var p models.AdvanceBookingParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Tham số rule không hợp lệ", err)
		}
		if p.MaxDays < 1 {
			return errors.NewAppError(errors.ErrCodeValidation, "Số ngày đặt trước tối đa phải lớn hơn 0", nil)
		}
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Loại rule không hợp lệ: "+req.RuleType, nil)
	}

	if req.ValidFrom != "" && req.ValidTo != "" {
		if _, _, err := ValidateDateRange(req.ValidFrom, req.ValidTo); err != nil {
			return err
		}
	}

	return nil
}

// ValidatePage validate thông tin trang
func ValidatePage(req *dto.PageRequest) error {
	if req.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề trang không được để trống", nil)
	}

	if req.Slug != "" && !isValidSlug(req.Slug) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Slug chỉ được chứa chữ thường, số và dấu gạch ngang", nil)
	}

	return nil
}

// ValidateCustomer validate thông tin khách hàng
func ValidateCustomer(req *dto.CustomerRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách hàng không được để trống", nil)
	}

	if req.Email != "" && !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if req.PhoneNumber != "" && !isValidPhone(req.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// isValidSlug kiểm tra slug hợp lệ
func isValidSlug(slug string) bool {
	slugRegex := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	return slugRegex.MatchString(slug)
}
