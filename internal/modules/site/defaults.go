package site

// Hardcoded fallback content. The public pages render this whenever the
// database has nothing to show, so a fresh deployment or a read failure never
// produces an empty page.

var fallbackAbout = AboutResponse{
	Bio:         "With over 10 years of experience in the beauty industry, I am dedicated to enhancing your natural beauty. My passion for makeup artistry began at a young age, and I have honed my skills through extensive training and hands-on experience. I specialize in creating timeless looks for brides, photo shoots, special events, quinceneras and everyday glamour that make you feel confident and beautiful.",
	Bio2:        "My commitment to excellence and attention to detail ensures that every client receives personalized service tailored to their unique features and preferences. Whether you're preparing for your wedding day, a special event, or just want to enhance your everyday look, I'm here to help you feel your most beautiful self.",
	AboutImage1: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1746067204/IMG_2972_htx11w.jpg",
	AboutImage2: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1746067227/IMG_2974_t0paza.jpg",
	Email:       "4hisglorymakeup@gmail.com",
}

var fallbackGallery = []GalleryItem{
	{ImageURL: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1745344480/IMG_2897_rqsnjs.png", AltText: "Bridal makeup"},
	{ImageURL: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1745344461/IMG_2896_q8cvoo.png", AltText: "Fashion makeup"},
	{ImageURL: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1745344410/IMG_2899_e0kn0e.png", AltText: "Special event makeup"},
	{ImageURL: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1745344390/IMG_2900_buc2vo.png", AltText: "Natural makeup look"},
}

var fallbackServices = []ServiceItem{
	{Title: "Bridal Makeup", Description: "Look your best on your special day with personalized bridal makeup services.", Category: "bridal"},
	{Title: "Special Event", Description: "Perfect makeup for photoshoots, galas, and other special occasions.", Category: "event"},
	{Title: "Makeup Lessons", Description: "Learn professional makeup techniques tailored to your features and style.", Category: "lessons"},
}

var fallbackFAQs = []FAQItem{
	{Question: "What services do you offer?", Answer: "I offer a wide range of makeup services including bridal makeup, special event makeup, photoshoot makeup, editorial makeup, and personalized makeup lessons. Each service is tailored to your unique features and style preferences.", Category: "Services"},
	{Question: "How far in advance should I book for my wedding?", Answer: "For weddings, I recommend booking 3-6 months in advance, especially during peak wedding season (May-October). This ensures we can accommodate your preferred date and allows time for a trial session if desired.", Category: "Booking"},
	{Question: "Do you offer trials for bridal makeup?", Answer: "Yes, I highly recommend scheduling a bridal trial 1-2 months before your wedding. This allows us to perfect your look and make any adjustments needed before your big day.", Category: "Services"},
	{Question: "What is your cancellation policy?", Answer: "I require 48 hours notice for cancellations. Cancellations made with less than 48 hours notice may be subject to a 50% fee. No-shows are charged the full service amount.", Category: "Policies"},
	{Question: "Do you travel to clients?", Answer: "Yes, I offer on-location services for weddings and special events. Travel fees may apply depending on the distance. Please note your location when booking.", Category: "Services"},
	{Question: "How long will my makeup last?", Answer: "Our professional techniques and high-quality products ensure your makeup will last 8-12 hours. For extended wear, we can use setting products to maximize longevity.", Category: "Products"},
}
