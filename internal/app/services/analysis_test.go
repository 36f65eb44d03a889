package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiwen/acadhub/internal/app/models"
)

func TestClassifyCertificate(t *testing.T) {
	tests := []struct {
		name            string
		certificateName string
		want            string
	}{
		{"english certificate", "大学英语四级证书", CategoryLanguage},
		{"computer certificate", "计算机二级证书", CategoryComputer},
		{"software certification", "软件设计师", CategoryProfessional},
		{"network certification", "网络工程师", CategoryProfessional},
		{"unmatched name", "普通话水平测试证书", CategoryOther},
		{"empty name", "", CategoryOther},
		{"language keyword wins over professional", "计算机英语证书", CategoryLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCertificate(tt.certificateName))
		})
	}
}

func certWithName(name string, year int, authority *string) models.Certificate {
	return models.Certificate{
		CertificateName:      name,
		UploadedAt:           time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC),
		CertificateAuthority: authority,
	}
}

func strPtr(s string) *string { return &s }

func TestBuildStatisticsAggregation(t *testing.T) {
	student := &models.Student{StudentID: "S1", Class: "计算机1班", Major: "计算机科学与技术"}
	certs := []models.Certificate{
		certWithName("大学英语四级证书", 2022, strPtr("教育部考试中心")),
		certWithName("计算机二级证书", 2022, nil),
		certWithName("软件设计师", 2023, strPtr("工信部")),
	}

	stats := BuildStatistics(student, certs)

	assert.Equal(t, 3, stats.TotalCertificates)
	assert.Equal(t, map[string]int{
		CategoryLanguage:     1,
		CategoryComputer:     1,
		CategoryProfessional: 1,
	}, stats.CertificateTypes)
	assert.Equal(t, map[int]int{2022: 2, 2023: 1}, stats.CertificatesByYear)
	assert.Equal(t, map[string]int{
		"教育部考试中心": 1,
		"未知机构":    1,
		"工信部":     1,
	}, stats.CertificatesByAuthority)
}

func TestBuildStatisticsReportSections(t *testing.T) {
	student := &models.Student{StudentID: "S1", Class: "计算机1班"}
	certs := []models.Certificate{
		certWithName("计算机二级证书", 2023, nil),
	}

	stats := BuildStatistics(student, certs)
	require.Len(t, stats.Analysis, 3)

	summary := stats.Analysis[0]
	assert.Equal(t, "基础分析", summary.Type)
	assert.Contains(t, summary.Content.(string), "1 个证书")
	assert.Contains(t, summary.Content.(string), "一般")

	categories := stats.Analysis[1]
	assert.Equal(t, "证书类型分析", categories.Type)
	rows, ok := categories.Content.([]CategoryAnalysis)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, CategoryComputer, rows[0].Type)
	assert.Equal(t, 1, rows[0].Count)
	assert.NotEmpty(t, rows[0].Suggestion)

	development := stats.Analysis[2]
	assert.Equal(t, "专业发展建议", development.Type)
	suggestions, ok := development.Content.([]string)
	require.True(t, ok)
	// A computer-class student holding only a computer certificate is
	// still missing the professional and language categories
	assert.Len(t, suggestions, 2)
}

func TestBuildStatisticsCategoryOrderIsStable(t *testing.T) {
	student := &models.Student{StudentID: "S1"}
	certs := []models.Certificate{
		certWithName("自定义证书", 2023, nil),
		certWithName("软件设计师", 2023, nil),
		certWithName("计算机二级证书", 2023, nil),
		certWithName("大学英语四级证书", 2023, nil),
	}

	first := BuildStatistics(student, certs)
	rows := first.Analysis[1].Content.([]CategoryAnalysis)
	require.Len(t, rows, 4)
	assert.Equal(t, CategoryLanguage, rows[0].Type)
	assert.Equal(t, CategoryComputer, rows[1].Type)
	assert.Equal(t, CategoryProfessional, rows[2].Type)
	assert.Equal(t, CategoryOther, rows[3].Type)
}

func TestLevelDescriptionBands(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "待提升"},
		{1, "一般"},
		{2, "一般"},
		{3, "良好"},
		{4, "良好"},
		{5, "优秀"},
		{9, "优秀"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelDescription(tt.count), "count=%d", tt.count)
	}
}

func TestDevelopmentSuggestionsFallback(t *testing.T) {
	// Non-computer classes always fall back to the balanced message
	suggestions := developmentSuggestions("金融1班", map[string]int{})
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "较为合理")

	// A computer class with every category covered also falls back
	covered := map[string]int{
		CategoryLanguage:     1,
		CategoryComputer:     2,
		CategoryProfessional: 1,
	}
	suggestions = developmentSuggestions("计算机2班", covered)
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "较为合理")
}
