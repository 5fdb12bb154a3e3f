package main

import (
	"log"

	"solutions-admin/config"
	"solutions-admin/domain/admin"
	"solutions-admin/domain/page"
	"solutions-admin/utils"
)

func main() {
	config.InitConfig()
	config.InitDB()
	defer config.CloseDB()

	// Seed the first admin account
	hashedPassword, err := utils.HashPassword("changeme123")
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	a, err := admin.Create("Admin", "admin@example.com", hashedPassword, admin.RoleAdmin)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("Seeded admin: %s (id %d)", a.Email, a.ID)

	// Seed a sample solution page
	subtitle := "Planejamento e defesa para empresas"
	pages := []page.SaveRequest{
		{
			Slug:     "direito-tributario",
			Title:    "Direito Tributário",
			Subtitle: &subtitle,
			Status:   page.StatusPublished,
			Blocks: page.Blocks{
				{ID: "hero-1", Type: page.BlockHero, Active: true, Order: 0, Data: map[string]interface{}{"headline": "Direito Tributário"}},
				{ID: "text-1", Type: page.BlockText, Active: true, Order: 1, Data: map[string]interface{}{"body": "Atuação completa em contencioso e consultivo."}},
			},
		},
	}

	for _, req := range pages {
		p, err := page.Save(&req)
		if err != nil {
			log.Fatalf("Failed to seed page %s: %v", req.Slug, err)
		}
		log.Printf("Seeded page: %s (id %d)", p.Slug, p.ID)
	}
}
