package services

import (
	"sort"
	"strings"

	"homestay/dto"
	"homestay/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách tên khách
func createMatcher(names []string) *closestmatch.ClosestMatch {
	return closestmatch.New(names, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// SuggestGuests tìm tên khách gần đúng trong toàn bộ stay của tài khoản:
// ứng viên lấy theo n-gram 2/3 rồi xếp lại theo khoảng cách levenshtein.
// Dùng cho ô tìm nhanh trên danh sách đặt phòng khi lễ tân gõ thiếu dấu
// hoặc sai chính tả.
func SuggestGuests(stays []models.Stay, query string, limit int) []dto.GuestSuggestion {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" || len(stays) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}

	// danh sách tên duy nhất, giữ bản viết gốc để trả về
	original := make(map[string]string)
	for _, st := range stays {
		norm := normalizeInput(st.GuestName)
		if norm != "" {
			if _, ok := original[norm]; !ok {
				original[norm] = st.GuestName
			}
		}
	}
	normalized := make([]string, 0, len(original))
	for norm := range original {
		normalized = append(normalized, norm)
	}

	cm := createMatcher(normalized)
	candidates := cm.ClosestN(normalizedQuery, limit*3)

	suggestions := make([]dto.GuestSuggestion, 0, len(candidates))
	seen := make(map[string]bool)
	for _, cand := range candidates {
		if cand == "" || seen[cand] {
			continue
		}
		seen[cand] = true
		score := calculateSimilarity(normalizedQuery, cand)
		if strings.Contains(cand, normalizedQuery) && score < 0.5 {
			score = 0.5
		}
		if score < 0.3 {
			continue
		}
		suggestions = append(suggestions, dto.GuestSuggestion{Name: original[cand], Score: score})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Name < suggestions[j].Name
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
