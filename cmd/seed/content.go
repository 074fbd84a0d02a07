package main

import (
	"encoding/json"

	"mehndi-service/internal/domain/catalog"
	"mehndi-service/internal/domain/page"
)

var defaultServices = []catalog.CreateServiceRequest{
	{
		Title:       "Bridal Mehndi",
		Description: "Full hands and feet in intricate traditional bridal patterns, with the couple's initials hidden in the design.",
		MinPrice:    5000,
		MaxPrice:    15000,
		Duration:    "4-6 hours",
		Category:    "bridal",
		Features:    []string{"Full hands and feet", "Custom motifs", "Organic henna", "Aftercare kit"},
		Popular:     true,
		SortOrder:   1,
	},
	{
		Title:       "Engagement Mehndi",
		Description: "Elegant half-hand designs for the engagement ceremony, matched to the outfit.",
		MinPrice:    2500,
		MaxPrice:    6000,
		Duration:    "2-3 hours",
		Category:    "bridal",
		Features:    []string{"Both hands", "Outfit matching", "Organic henna"},
		SortOrder:   2,
	},
	{
		Title:       "Arabic Mehndi",
		Description: "Bold flowing Arabic patterns with shaded florals and open spaces.",
		MinPrice:    800,
		MaxPrice:    2500,
		Duration:    "1-2 hours",
		Category:    "party",
		Features:    []string{"Quick application", "Bold patterns"},
		Popular:     true,
		SortOrder:   3,
	},
	{
		Title:       "Festival Mehndi",
		Description: "Festive designs for Karva Chauth, Teej, Eid and Diwali. Group bookings welcome.",
		MinPrice:    500,
		MaxPrice:    2000,
		Duration:    "30-90 minutes",
		Category:    "festival",
		Features:    []string{"Group discounts", "Home visits"},
		SortOrder:   4,
	},
	{
		Title:       "Corporate Events",
		Description: "Mehndi stalls for office celebrations, exhibitions and brand events.",
		MinPrice:    8000,
		MaxPrice:    25000,
		Duration:    "Half or full day",
		Category:    "corporate",
		Features:    []string{"Multiple artists", "Quick designs", "On-site setup"},
		SortOrder:   5,
	},
}

type defaultPage struct {
	slug string
	req  page.UpsertPageRequest
}

func intPtr(v int) *int { return &v }

var defaultPages = []defaultPage{
	{
		slug: "home",
		req: page.UpsertPageRequest{
			Title:           "Home",
			Status:          page.StatusPublished,
			MetaTitle:       "Mehndi Artist | Bridal and Party Henna",
			MetaDescription: "Bridal, party and festival mehndi by a professional henna artist. Book your date online.",
			Sections: []page.SectionInput{
				{
					ID:      "hero",
					Type:    "hero",
					Title:   "Mehndi for every celebration",
					Content: json.RawMessage(`{"subtitle":"Bridal, party and festival henna","cta":{"label":"Book now","href":"/booking"}}`),
					Order:   intPtr(0),
				},
				{
					ID:    "services",
					Type:  "services",
					Title: "Services",
					Order: intPtr(1),
				},
				{
					ID:      "gallery",
					Type:    "gallery",
					Title:   "Recent work",
					Content: json.RawMessage(`{"limit":8,"featured":true}`),
					Order:   intPtr(2),
				},
			},
		},
	},
	{
		slug: "about",
		req: page.UpsertPageRequest{
			Title:  "About",
			Status: page.StatusPublished,
			Sections: []page.SectionInput{
				{
					ID:      "story",
					Type:    "text",
					Title:   "About the artist",
					Content: json.RawMessage(`{"body":"Professional mehndi artist with years of bridal and event experience, using only natural henna."}`),
					Order:   intPtr(0),
				},
			},
		},
	},
	{
		slug: "faq",
		req: page.UpsertPageRequest{
			Title:  "Frequently Asked Questions",
			Status: page.StatusPublished,
			Sections: []page.SectionInput{
				{
					ID:    "questions",
					Type:  "faq",
					Title: "FAQ",
					Content: json.RawMessage(`{"items":[` +
						`{"q":"How long does the colour last?","a":"One to three weeks depending on skin and aftercare."},` +
						`{"q":"Do you travel?","a":"Yes, home and venue visits are available."}]}`),
					Order: intPtr(0),
				},
			},
		},
	},
}
