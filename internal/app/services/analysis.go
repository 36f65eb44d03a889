package services

import (
	"fmt"
	"strings"

	"github.com/kaiwen/acadhub/internal/app/models"
)

// Certificate categories derived from the certificate name
const (
	CategoryLanguage     = "语言类"
	CategoryComputer     = "计算机类"
	CategoryProfessional = "专业认证"
	CategoryOther        = "其他"
)

// categoryOrder fixes the iteration order of derived categories so
// reports come out the same for the same input
var categoryOrder = []string{CategoryLanguage, CategoryComputer, CategoryProfessional, CategoryOther}

const unknownAuthority = "未知机构"

// CertificateStatistics aggregates one student's certificates by derived
// category, upload year and issuing authority, with an attached advisory
// report.
type CertificateStatistics struct {
	TotalCertificates       int             `json:"totalCertificates"`
	CertificateTypes        map[string]int  `json:"certificateTypes"`
	CertificatesByYear      map[int]int     `json:"certificatesByYear"`
	CertificatesByAuthority map[string]int  `json:"certificatesByAuthority"`
	Analysis                []ReportSection `json:"analysis"`
}

// ReportSection is one block of the advisory report. Content is a plain
// sentence for the summary section, a []CategoryAnalysis for the
// per-category section and a []string for the development suggestions.
type ReportSection struct {
	Type    string `json:"type"`
	Content any    `json:"content"`
}

// CategoryAnalysis is one row of the per-category report section
type CategoryAnalysis struct {
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Suggestion string `json:"suggestion"`
}

// ClassifyCertificate derives a category from the certificate name.
// Matching is case-insensitive and the first matching keyword wins.
func ClassifyCertificate(certificateName string) string {
	name := strings.ToLower(certificateName)
	switch {
	case strings.Contains(name, "英语"):
		return CategoryLanguage
	case strings.Contains(name, "计算机"):
		return CategoryComputer
	case strings.Contains(name, "软件"), strings.Contains(name, "网络"):
		return CategoryProfessional
	default:
		return CategoryOther
	}
}

// BuildStatistics computes the full statistics object for one student's
// certificate set. Pure; both inputs come from earlier queries.
func BuildStatistics(student *models.Student, certificates []models.Certificate) *CertificateStatistics {
	byType := make(map[string]int)
	byYear := make(map[int]int)
	byAuthority := make(map[string]int)

	for _, cert := range certificates {
		byType[ClassifyCertificate(cert.CertificateName)]++
		byYear[cert.UploadedAt.Year()]++

		authority := unknownAuthority
		if cert.CertificateAuthority != nil && *cert.CertificateAuthority != "" {
			authority = *cert.CertificateAuthority
		}
		byAuthority[authority]++
	}

	return &CertificateStatistics{
		TotalCertificates:       len(certificates),
		CertificateTypes:        byType,
		CertificatesByYear:      byYear,
		CertificatesByAuthority: byAuthority,
		Analysis:                buildAnalysisReport(student, len(certificates), byType),
	}
}

func buildAnalysisReport(student *models.Student, total int, byType map[string]int) []ReportSection {
	sections := []ReportSection{
		{
			Type: "基础分析",
			Content: fmt.Sprintf("您目前共获得 %d 个证书，在计算机科学专业学生中处于%s水平。",
				total, levelDescription(total)),
		},
	}

	var categoryRows []CategoryAnalysis
	for _, category := range categoryOrder {
		count, ok := byType[category]
		if !ok {
			continue
		}
		categoryRows = append(categoryRows, CategoryAnalysis{
			Type:       category,
			Count:      count,
			Suggestion: categorySuggestion(category, count),
		})
	}
	sections = append(sections, ReportSection{Type: "证书类型分析", Content: categoryRows})

	// The development gate keys off the class field, not the major
	sections = append(sections, ReportSection{
		Type:    "专业发展建议",
		Content: developmentSuggestions(student.Class, byType),
	})

	return sections
}

func levelDescription(count int) string {
	switch {
	case count >= 5:
		return "优秀"
	case count >= 3:
		return "良好"
	case count >= 1:
		return "一般"
	default:
		return "待提升"
	}
}

func categorySuggestion(category string, count int) string {
	switch category {
	case CategoryLanguage:
		if count >= 2 {
			return "您的语言类证书较为丰富，建议继续提升专业能力。"
		}
		return "建议考取更多语言类证书，提升语言能力。"
	case CategoryComputer:
		if count >= 1 {
			return "您已具备基础计算机能力，建议向专业方向发展。"
		}
		return "建议考取计算机类基础证书。"
	case CategoryProfessional:
		if count >= 1 {
			return "您已开始专业认证，建议继续深入发展。"
		}
		return "建议考取与专业相关的认证证书。"
	default:
		return "建议根据职业规划考取相关证书。"
	}
}

func developmentSuggestions(class string, byType map[string]int) []string {
	var suggestions []string

	if strings.Contains(class, "计算机") {
		if byType[CategoryComputer] == 0 {
			suggestions = append(suggestions, "建议考取计算机二级证书，夯实基础能力。")
		}
		if byType[CategoryProfessional] == 0 {
			suggestions = append(suggestions, "建议考取软件设计师或网络工程师等专业认证，提升就业竞争力。")
		}
		if byType[CategoryLanguage] == 0 {
			suggestions = append(suggestions, "建议考取英语四级证书，提升语言能力。")
		}
	}

	if len(suggestions) == 0 {
		return []string{"您的证书结构较为合理，建议继续按照职业规划发展。"}
	}
	return suggestions
}
