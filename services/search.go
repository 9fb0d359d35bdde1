package services

import (
	"sort"
	"strings"
	"sync"

	"rms/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// ScoredTenant người thuê kèm điểm phù hợp với query
type ScoredTenant struct {
	Tenant models.Tenant `json:"tenant"`
	Score  int           `json:"score"`
}

// Hàm chuẩn hóa chuỗi: bỏ dấu tiếng Việt, thường hóa
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
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

// Tạo danh sách quê quán duy nhất cho closestmatch
func prepareHometownList(tenants []models.Tenant) []string {
	uniqueValues := make(map[string]bool)
	for _, tenant := range tenants {
		if tenant.Hometown != "" {
			uniqueValues[normalizeInput(tenant.Hometown)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho một người thuê
func scoreTenant(query string, tenant models.Tenant, cmHometown *closestmatch.ClosestMatch) int {
	score := 0
	normalizedName := normalizeInput(tenant.FullName)

	similarity := calculateSimilarity(query, normalizedName)
	if similarity > 0.7 {
		score += 20
	} else if strings.Contains(normalizedName, query) || strings.Contains(query, normalizedName) {
		score += 15
	} else {
		// Khớp theo từng từ trong tên
		for _, part := range strings.Fields(normalizedName) {
			if calculateSimilarity(query, part) > 0.7 {
				score += 8
				break
			}
		}
	}

	if tenant.Phone != "" && strings.Contains(tenant.Phone, strings.TrimSpace(query)) {
		score += 15
	}
	if tenant.IDCard != nil && strings.Contains(*tenant.IDCard, strings.TrimSpace(query)) {
		score += 15
	}
	if tenant.Hometown != "" && cmHometown.Closest(query) == normalizeInput(tenant.Hometown) {
		score += 5
	}
	if tenant.Occupation != "" && strings.Contains(query, normalizeInput(tenant.Occupation)) {
		score += 3
	}

	return score
}

// SearchTenants tìm người thuê theo query mờ, không phân biệt dấu.
// Kết quả xếp theo điểm giảm dần, chỉ giữ kết quả có điểm dương.
func SearchTenants(query string, tenants []models.Tenant) []ScoredTenant {
	normalizedQuery := normalizeInput(query)
	cmHometown := createMatcher(prepareHometownList(tenants))

	scoreCh := make(chan ScoredTenant, len(tenants))
	var wg sync.WaitGroup

	for _, tenant := range tenants {
		wg.Add(1)
		go func(tenant models.Tenant) {
			defer wg.Done()
			score := scoreTenant(normalizedQuery, tenant, cmHometown)
			if score > 0 {
				scoreCh <- ScoredTenant{Tenant: tenant, Score: score}
			}
		}(tenant)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []ScoredTenant
	for st := range scoreCh {
		scored = append(scored, st)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
