// Package occupancy là phần lõi thuần của dashboard: phân loại stay theo
// ngày tham chiếu, quy trạng thái phòng và dựng view lọc/sắp xếp/tổng hợp.
// Toàn bộ package không có side effect và không giữ state cấp package;
// mọi dữ liệu được truyền vào qua tham số và snapshot được coi là bất biến
// trong một lần tính.
package occupancy

import "time"

const isoDateLayout = "2006-01-02"

// ValidDate kiểm tra chuỗi có đúng định dạng ISO YYYY-MM-DD không.
// Ngày trong package này so sánh bằng phép so sánh chuỗi: định dạng ISO
// có độ rộng cố định nên thứ tự từ điển trùng thứ tự thời gian.
func ValidDate(s string) bool {
	if len(s) != len(isoDateLayout) {
		return false
	}
	_, err := time.Parse(isoDateLayout, s)
	return err == nil
}

// Today trả về ngày hiện tại theo giờ local dạng ISO, dùng làm ngày tham
// chiếu mặc định khi caller không truyền.
func Today() string {
	return time.Now().Format(isoDateLayout)
}
