package store

import (
	"studentrent/internal/domain"
	"studentrent/pkg/utils"
)

// 演示账号，和前端登录页提示保持一致
const (
	DemoTenantEmail   = "student@demo.com"
	DemoLandlordEmail = "landlord@demo.com"
	DemoPassword      = "demo123"
)

// seedData 首次启动（或 blob 损坏后）落盘的默认数据集
func seedData() *Data {
	demoHash := utils.HashPassword(DemoPassword)
	return &Data{
		Users: []*domain.User{
			{
				ID:        1,
				Name:      "Demo Student",
				Email:     DemoTenantEmail,
				Password:  demoHash,
				Role:      domain.RoleTenant,
				Phone:     "+2348012345678",
				CreatedAt: "2024-01-01",
			},
			{
				ID:        2,
				Name:      "Demo Landlord",
				Email:     DemoLandlordEmail,
				Password:  demoHash,
				Role:      domain.RoleLandlord,
				Phone:     "+2348098765432",
				CreatedAt: "2024-01-01",
			},
		},
		Properties: []*domain.Property{
			{
				ID:           1,
				Title:        "Spacious 2-Bedroom Apartment near UNIBEN",
				Description:  "Well-furnished apartment with constant water and electricity. Close to University of Benin. 24/7 security.",
				Price:        180000,
				Type:         "apartment",
				Bedrooms:     2,
				Bathrooms:    2,
				State:        "Edo",
				City:         "Benin City",
				Area:         "Ugbowo",
				Address:      "Ugbowo Road",
				Images:       []string{},
				LandlordID:   2,
				LandlordName: "Demo Landlord",
				Features:     []string{"24/7 Security", "Constant Water", "Furnished", "WiFi Ready"},
				Contact:      "+2348098765432",
				CreatedAt:    "2024-01-15",
				Status:       domain.StatusAvailable,
				Likes:        []int64{},
				Views:        0,
			},
		},
	}
}
