package services

import (
	"sort"

	"github.com/kaiwen/acadhub/internal/app/models"
)

// Recommendation is one suggested certificate with a ranking priority
type Recommendation struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Reason   string `json:"reason"`
}

// commonRecommendations apply to every student
var commonRecommendations = []Recommendation{
	{Name: "大学英语四级证书", Priority: 1, Reason: "基础语言能力认证"},
	{Name: "大学英语六级证书", Priority: 2, Reason: "高级语言能力认证"},
	{Name: "计算机二级证书", Priority: 1, Reason: "基础计算机能力认证"},
	{Name: "普通话水平测试证书", Priority: 1, Reason: "基础语言表达能力认证"},
}

// majorRecommendations are keyed by exact major name; unknown majors
// contribute nothing
var majorRecommendations = map[string][]Recommendation{
	"计算机科学与技术": {
		{Name: "软件设计师", Priority: 3, Reason: "软件开发专业认证"},
		{Name: "网络工程师", Priority: 3, Reason: "网络技术专业认证"},
		{Name: "数据库系统工程师", Priority: 3, Reason: "数据库管理专业认证"},
	},
	"金融学": {
		{Name: "证券从业资格证", Priority: 3, Reason: "金融行业基础认证"},
		{Name: "基金从业资格证", Priority: 3, Reason: "基金行业基础认证"},
		{Name: "银行从业资格证", Priority: 3, Reason: "银行业基础认证"},
	},
	"会计学": {
		{Name: "初级会计师", Priority: 3, Reason: "会计行业基础认证"},
		{Name: "注册会计师", Priority: 4, Reason: "会计行业高级认证"},
		{Name: "税务师", Priority: 3, Reason: "税务专业认证"},
	},
}

// GenerateRecommendations merges the common catalog with the student's
// major catalog, drops certificates the student already holds (exact
// name match) and ranks the rest by priority, highest first. Pure.
func GenerateRecommendations(student *models.Student, existing []models.Certificate) []Recommendation {
	held := make(map[string]struct{}, len(existing))
	for _, cert := range existing {
		held[cert.CertificateName] = struct{}{}
	}

	var recommendations []Recommendation
	for _, rec := range commonRecommendations {
		if _, ok := held[rec.Name]; !ok {
			recommendations = append(recommendations, rec)
		}
	}
	for _, rec := range majorRecommendations[student.Major] {
		if _, ok := held[rec.Name]; !ok {
			recommendations = append(recommendations, rec)
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority > recommendations[j].Priority
	})

	return recommendations
}
