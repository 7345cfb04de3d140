package content

import "github.com/kanoha/storefront/internal/core/domain"

var sitePages = []domain.Page{
	{
		Slug:    "home",
		Path:    "/",
		Title:   "Kanoha Import",
		Eyebrow: "Trade & Logistics",
		Heading: "Your Gateway to Global Trade.",
		Lead: "Kanoha connects Vietnamese businesses with suppliers worldwide: " +
			"sourcing, import agency and freight under one roof.",
		Sections: []domain.Section{
			{
				Title: "What We Do",
				Items: []domain.SectionItem{
					{Title: "Products", Body: "Over 3,000 high-demand items ready to ship.", Link: "/products"},
					{Title: "Freight Forwarding", Body: "Air, sea, road and rail logistics.", Link: "/services/freight-forwarding"},
					{Title: "Entrusted Import", Body: "We import on your behalf, customs included.", Link: "/services/entrusted-import"},
				},
			},
			{
				Title: "How It Works",
				Items: []domain.SectionItem{
					{Title: "1. Browse", Body: "Add products to your inquiry list."},
					{Title: "2. Inquire", Body: "Send the list with your contact details."},
					{Title: "3. Receive a Quote", Body: "Our team replies with pricing and lead times."},
				},
			},
		},
	},
	{
		Slug:    "about",
		Path:    "/about",
		Title:   "About Us",
		Eyebrow: "Who We Are",
		Heading: "Built on Trust and Trade.",
		Lead: "To empower Vietnamese businesses by providing secure, transparent, " +
			"and efficient access to global goods, fostering growth and international collaboration.",
		Sections: []domain.Section{
			{
				Title: "Our Values",
				Items: []domain.SectionItem{
					{Title: "Global Reach", Body: "Connecting you to suppliers worldwide with established trade routes."},
					{Title: "Compliance First", Body: "Navigating complex customs and legal regulations so you don't have to."},
					{Title: "Client Centric", Body: "Tailored solutions designed to meet the specific needs of your business."},
				},
			},
		},
	},
	{
		Slug:    "services",
		Path:    "/services",
		Title:   "Services",
		Eyebrow: "Our Expertise",
		Heading: "Services That Move Your Business.",
		Sections: []domain.Section{
			{
				Title: "Solutions",
				Items: []domain.SectionItem{
					{Title: "Drop Shipping", Body: "Ship directly to your customers without holding inventory. We handle the logistics, so you can focus on sales."},
					{Title: "Wholesale Distribution", Body: "Bulk purchasing options for retailers looking to stock their own shelves with high-margin products."},
					{Title: "Fulfillment Services", Body: "Let us handle the picking, packing, and shipping of your orders from our warehouses."},
					{Title: "Global Sourcing", Body: "We leverage our international network to find the best products at the best prices for your market."},
				},
			},
			{
				Title: "Specialised Services",
				Items: []domain.SectionItem{
					{Title: "Freight Forwarding", Link: "/services/freight-forwarding"},
					{Title: "Entrusted Import", Link: "/services/entrusted-import"},
				},
			},
			{
				Title: "Why Partner With Us",
				Items: []domain.SectionItem{
					{Title: "Dedicated Support"},
					{Title: "Risk-Free Partnership"},
					{Title: "Growth Focused"},
				},
			},
		},
	},
	{
		Slug:    "freight-forwarding",
		Path:    "/services/freight-forwarding",
		Title:   "Freight Forwarding",
		Eyebrow: "Services",
		Heading: "Freight Forwarding",
		Sections: []domain.Section{
			{
				Title: "Why Work with Us?",
				Items: []domain.SectionItem{
					{Title: "End-to-End Logistics", Body: "From pick-up to delivery, we manage every step of the shipping process."},
					{Title: "Multimodal Options", Body: "Choose the mode that best suits your needs: air, sea, road, or rail."},
					{Title: "Global Network", Body: "Our extensive network of partners ensures your goods reach their destination safely."},
					{Title: "Real-time Tracking", Body: "Complete transparency with real-time updates on your shipment's status."},
				},
			},
			{
				Title: "Our Key Services",
				Items: []domain.SectionItem{
					{Title: "Air Freight", Body: "Fast and reliable for time-sensitive shipments."},
					{Title: "Sea Freight", Body: "Cost-effective solutions for bulk goods."},
					{Title: "Road Freight", Body: "Flexible domestic and cross-border transport."},
					{Title: "Rail Freight", Body: "Efficient long-distance overland shipping."},
				},
			},
		},
	},
	{
		Slug:    "entrusted-import",
		Path:    "/services/entrusted-import",
		Title:   "Entrusted Import",
		Eyebrow: "Services",
		Heading: "Entrusted Import",
		Lead:    "Let us simplify the import process so you can focus on growing your business!",
		Sections: []domain.Section{
			{
				Title: "What We Provide",
				Items: []domain.SectionItem{
					{Title: "Regulatory Guidance", Body: "Expert advice on import regulations, HS codes, and duty rates to ensure full compliance."},
					{Title: "Supplier Negotiation", Body: "We handle communications and negotiations with international suppliers on your behalf."},
					{Title: "Customs Management", Body: "Complete handling of customs clearance, documentation, and tax payments."},
					{Title: "Door-to-Door Delivery", Body: "Seamless logistics from the supplier's factory directly to your warehouse."},
				},
			},
		},
	},
	{
		Slug:    "products",
		Path:    "/products",
		Title:   "Products",
		Eyebrow: "Our Inventory",
		Heading: "World-Class Products.",
		Lead: "Explore our extensive catalog of high-demand items. From cutting-edge " +
			"electronics to essential home goods, we stock what sells.",
	},
	{
		Slug:    "contact",
		Path:    "/contact",
		Title:   "Contact",
		Eyebrow: "Get in Touch",
		Heading: "Let's Talk Business.",
		Sections: []domain.Section{
			{
				Title: "Office",
				Items: []domain.SectionItem{
					{Title: "Address", Body: "RM 1307, 13/F, KENBO COMMERCIAL BLDG, 335–339 QUEEN'S ROAD WEST, HK"},
					{Title: "Phone", Body: "+8617170491555"},
					{Title: "Email", Body: "kanohalimited@gmail.com"},
				},
			},
			{
				Title: "Working Hours",
				Items: []domain.SectionItem{
					{Title: "Mon - Fri", Body: "8:00 AM - 5:00 PM"},
					{Title: "Sat", Body: "8:00 AM - 12:00 PM"},
				},
			},
		},
	},
	{
		Slug:    "member",
		Path:    "/member",
		Title:   "Membership",
		Eyebrow: "Membership",
		Heading: "Unlock Exclusive Benefits.",
		Lead: "Join our network of successful importers and get access to premium " +
			"pricing, priority support, and exclusive market insights.",
		Sections: []domain.Section{
			{
				Title: "Benefits",
				Items: []domain.SectionItem{
					{Title: "Wholesale Pricing", Body: "Access our lowest tier pricing for bulk orders."},
					{Title: "Market Insights", Body: "Monthly reports on trending products and import regulations."},
					{Title: "Priority Support", Body: "Dedicated account manager for your business."},
				},
			},
		},
	},
	{
		Slug:    "policy",
		Path:    "/policy",
		Title:   "Privacy Policy & Terms",
		Eyebrow: "Legal",
		Heading: "Privacy Policy & Terms of Service",
		Sections: []domain.Section{
			{Title: "1. Introduction", Body: "This policy explains how Kanoha handles the information you share with us through this website."},
			{Title: "2. Information We Collect", Body: "Contact details you submit through our inquiry, contact and membership forms, and the contents of your inquiry list."},
			{Title: "3. How We Use Your Information", Body: "To prepare quotes, answer messages and process membership applications."},
			{Title: "4. Data Security", Body: "We apply reasonable technical and organisational measures to protect your information."},
			{Title: "5. Terms of Service", Body: "Prices are quoted on request. Listings are informational and do not constitute an offer."},
			{Title: "6. Changes to This Policy", Body: "We may update this policy from time to time. Changes take effect when published here."},
			{Title: "7. Contact Us", Body: "Questions about this policy can be sent to kanohalimited@gmail.com."},
		},
	},
	{
		Slug:    "cart",
		Path:    "/cart",
		Title:   "Inquiry List",
		Eyebrow: "Your Selection",
		Heading: "Inquiry List",
		Lead:    "Add items to your inquiry list to request a custom quote.",
	},
	{
		Slug:    "not-found",
		Path:    "/404",
		Title:   "Page Not Found",
		Eyebrow: "404",
		Heading: "Page Not Found",
		Lead:    "The page you are looking for does not exist or has been moved.",
	},
}
