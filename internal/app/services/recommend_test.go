package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiwen/acadhub/internal/app/models"
)

func TestGenerateRecommendationsUnknownMajor(t *testing.T) {
	student := &models.Student{StudentID: "S1", Major: "哲学"}

	recommendations := GenerateRecommendations(student, nil)

	// Only the common catalog applies
	require.Len(t, recommendations, 4)
	for _, rec := range recommendations {
		assert.NotEmpty(t, rec.Name)
		assert.NotEmpty(t, rec.Reason)
	}
}

func TestGenerateRecommendationsMajorCatalog(t *testing.T) {
	student := &models.Student{StudentID: "S1", Major: "计算机科学与技术"}

	recommendations := GenerateRecommendations(student, nil)
	require.Len(t, recommendations, 7)

	names := make([]string, len(recommendations))
	for i, rec := range recommendations {
		names[i] = rec.Name
	}
	assert.Contains(t, names, "软件设计师")
	assert.Contains(t, names, "网络工程师")
	assert.Contains(t, names, "数据库系统工程师")
}

func TestGenerateRecommendationsExcludesHeldCertificates(t *testing.T) {
	student := &models.Student{StudentID: "S1", Major: "会计学"}
	held := []models.Certificate{
		{CertificateName: "注册会计师"},
		{CertificateName: "大学英语四级证书"},
	}

	recommendations := GenerateRecommendations(student, held)

	for _, rec := range recommendations {
		assert.NotEqual(t, "注册会计师", rec.Name)
		assert.NotEqual(t, "大学英语四级证书", rec.Name)
	}
	// 4 common + 3 major minus the 2 held
	assert.Len(t, recommendations, 5)
}

func TestGenerateRecommendationsSortedByPriority(t *testing.T) {
	student := &models.Student{StudentID: "S1", Major: "会计学"}

	recommendations := GenerateRecommendations(student, nil)
	require.NotEmpty(t, recommendations)

	for i := 1; i < len(recommendations); i++ {
		assert.GreaterOrEqual(t, recommendations[i-1].Priority, recommendations[i].Priority)
	}
	// 注册会计师 carries the highest priority in the accounting catalog
	assert.Equal(t, "注册会计师", recommendations[0].Name)
}

func TestGenerateRecommendationsAllHeld(t *testing.T) {
	student := &models.Student{StudentID: "S1", Major: "金融学"}
	var held []models.Certificate
	for _, rec := range commonRecommendations {
		held = append(held, models.Certificate{CertificateName: rec.Name})
	}
	for _, rec := range majorRecommendations["金融学"] {
		held = append(held, models.Certificate{CertificateName: rec.Name})
	}

	assert.Empty(t, GenerateRecommendations(student, held))
}
