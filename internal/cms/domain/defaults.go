package domain

import (
	"encoding/json"
	"time"
)

// defaultAdminHash is the bcrypt hash of the initial admin password
// ("rise2024"). Keeping the fixed hash makes a freshly seeded users.json
// interchangeable with one carried over from an earlier install.
const defaultAdminHash = "$2a$12$LQv3c1yqBWVHxkd0LHAkCOYz6TtxMQJqhN8/LewdBedXHBrNaKj6y"

// DefaultUsers is the user collection synthesised when users.json is
// absent: a single super-admin account.
func DefaultUsers(email, name string, now time.Time) []User {
	return []User{
		{
			ID:           1,
			Email:        email,
			PasswordHash: defaultAdminHash,
			Role:         RoleSuper,
			Name:         name,
			IsActive:     true,
			CreatedAt:    now,
			LastLogin:    nil,
		},
	}
}

// DefaultContent is the content document synthesised when content.json is
// absent. It mirrors the copy the marketing site ships with so the React
// frontend renders something sensible before the first CMS edit.
func DefaultContent() Document {
	var doc Document
	// The literal below is valid JSON; a failure here is a programming
	// error, not a runtime condition.
	if err := json.Unmarshal([]byte(defaultContentJSON), &doc); err != nil {
		panic("domain: default content is not valid JSON: " + err.Error())
	}
	return doc
}

const defaultContentJSON = `{
  "hero": {
    "title": "RISE",
    "subtitle": "Empowering Recovery • Innovation • Science • Excellence",
    "description": "Experience the future of stroke and SCI recovery. Our evidence-based, high-intensity training achieves in days what traditional methods take months to accomplish.",
    "backgroundImage": "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=1200&h=800&fit=crop",
    "rotatingWords": ["Recovery", "Innovation", "Science", "Excellence"],
    "stats": [
      { "label": "Revolutionary Results", "value": "3-5 Days" },
      { "label": "Lives Transformed", "value": "500+" },
      { "label": "Than Traditional Methods", "value": "10x Faster" }
    ],
    "buttons": [
      { "text": "Start Your Journey", "type": "primary", "action": "consultation" },
      { "text": "Discover RISE Method", "type": "secondary", "action": "general" }
    ]
  },
  "scrollingWords": [
    "Empowering", "Invigorating", "Freedom", "Groundbreaking", "Inspiring",
    "Life-Changing", "Unmatched", "Your Spark", "Evidence-Based", "Bold",
    "Proven", "Effective", "Cutting-Edge", "A Fresh Start", "Strength",
    "Personalized", "Intuitive", "Accessible", "Reliable", "Authentic",
    "Transparent", "Limitless", "Unstoppable", "Transformational",
    "Your Reason", "Unconventional", "One-of-a-kind", "Creative",
    "Essential", "Priceless", "World-class", "Your 2nd Chance"
  ],
  "successPathways": {
    "title": "Success Pathways",
    "survivor": {
      "title": "…as a stroke / SCI survivor",
      "image": "/assets/images/survivor.jpg",
      "description": "Greatness is not a function of your situation. Greatness is largely a matter of choice and discipline. If you've had a Stroke or SCI and you're ready to achieve greatness, we're a click away from being your greatest resource."
    },
    "trainer": {
      "title": "…as a trainer",
      "image": "/assets/images/trainer.webp",
      "description": "No exercise is better for the heart than reaching out and lifting others up. If you're a student or healthcare professional and interested in unlocking your skills while transforming people's lives, we're currently accepting applicants."
    }
  },
  "riseMethod": {
    "title": "The RISE Method",
    "subtitle": "Three pillars that make our approach to recovery uniquely effective and transformational",
    "methods": [
      {
        "title": "High-intensity Bootcamp",
        "content": "The biggest obstacles you face are the ones you've placed on yourself. Let us help you tear them down so we can build you up to reclaim your life",
        "icon": "⚡"
      },
      {
        "title": "Personalized Training and Support",
        "content": "We review, assess, and interview all RISE clients (and family members) to ensure we make the most out of every bootcamp. You and your goals are our biggest priority.",
        "icon": "❤️"
      },
      {
        "title": "Evidence-based with Grit Embraced",
        "content": "Our methods were meticulously constructed to empower you in every possible way. We set you up for success before the bootcamp begins and provide support long after the bootcamp ends.",
        "icon": "🧠"
      }
    ],
    "stats": [
      { "label": "Intensive Bootcamp Duration", "value": "3-5 Days" },
      { "label": "Evidence-Based Protocols", "value": "100%" },
      { "label": "Ongoing Support", "value": "Lifetime" }
    ]
  },
  "team": [
    {
      "id": 1,
      "name": "Phil Lamoreaux",
      "title": "CIO - Chief Innovation Officer",
      "subtitle": "\"The OT Professor\"",
      "bio": "An Occupational Therapist and personal trainer with extensive experience in neuro-rehabilitation and high-intensity training methodologies. Phil has pioneered the evidence-based techniques that form the foundation of RISE's revolutionary approach to stroke and SCI recovery.",
      "image": "/assets/images/Phil.webp",
      "imageFallback": "/assets/images/Phil.PNG",
      "alt": "Phil Lamoreaux, CIO and The OT Professor at RISE",
      "specialties": ["Occupational Therapy", "High-Intensity Training", "Neuro-Rehabilitation"],
      "gradientFrom": "from-red-500",
      "gradientTo": "to-orange-500"
    },
    {
      "id": 2,
      "name": "Jason Freed",
      "title": "CSO - Chief Strategy Officer",
      "subtitle": "Strategic Leadership",
      "bio": "Brings strategic vision and operational excellence to RISE, ensuring our innovative training methods reach those who need them most. Jason focuses on scaling our impact while maintaining the personalized, high-quality care that defines the RISE experience.",
      "image": "/assets/images/Jason.webp",
      "imageFallback": "/assets/images/Jason.png",
      "alt": "Jason Freed, CSO and Strategic Leader at RISE",
      "specialties": ["Strategic Planning", "Operations", "Program Development"],
      "gradientFrom": "from-yellow-500",
      "gradientTo": "to-red-500"
    },
    {
      "id": 3,
      "name": "Claire Plunkett",
      "title": "CXO - Chief Experience Officer",
      "subtitle": "Client Experience Excellence",
      "bio": "Dedicated to ensuring every client and family member receives exceptional care and support throughout their RISE journey. Claire oversees the holistic experience that makes RISE bootcamps transformational beyond just the physical training.",
      "image": "/assets/images/claire.webp",
      "imageFallback": "/assets/images/claire.png",
      "alt": "Claire Plunkett, CXO and Client Experience Leader at RISE",
      "specialties": ["Client Experience", "Family Support", "Program Coordination"],
      "gradientFrom": "from-purple-500",
      "gradientTo": "to-yellow-500"
    }
  ],
  "testimonials": [
    {
      "id": 1,
      "quote": "Absolutely. Compared to other certifications I've pursued, this was on another level. The small, intimate group setting allowed for extensive hands-on practice and observation. So much time was dedicated to both the patients and us as trainers. I gained a wealth of knowledge and practical skills that I can immediately apply, making it worth every penny.",
      "author": "Bootcamp Trainee",
      "type": "trainer"
    },
    {
      "id": 2,
      "quote": "Six months ago, I suffered a spinal cord injury that left me paralyzed from the waist down. My OT warned me this would be the toughest thing I'd done yet, and she was right. From the first session, I knew this was different. The workouts were intense, but the way the team encouraged me made all the difference. My walking speed doubled, and my confidence soared.",
      "author": "Bootcamp Participant",
      "type": "participant"
    },
    {
      "id": 3,
      "quote": "Before RISE, I didn't know what to expect for our son. The sessions were tough, but what stood out most was how the team pushed him beyond what he thought possible. The confidence and belief RISE gave him was game-changing. This bootcamp wasn't just another rehab program. It showed him what he was capable of.",
      "author": "Father of Participant",
      "type": "family"
    }
  ],
  "faq": [
    {
      "id": 1,
      "question": "What exactly is high-intensity training (HIT)?",
      "answer": "High-Intensity Training (HIT) in the context of stroke and SCI recovery refers to our evidence-based approach that maximizes neuroplasticity through intensive, task-specific exercises performed at higher intensities than traditional rehabilitation. Our protocols are designed to challenge the nervous system in ways that promote rapid neural adaptation and functional recovery."
    },
    {
      "id": 2,
      "question": "Is your training offered in-person or online?",
      "answer": "RISE bootcamps are conducted in-person to ensure the highest quality of care and optimal results. We travel to various locations across the country to make our programs accessible. While we offer some educational resources and follow-up support online, the core bootcamp experience is exclusively in-person."
    },
    {
      "id": 3,
      "question": "How many days is a typical bootcamp and what would we do each day?",
      "answer": "RISE bootcamps typically run 3-5 days, with each day involving 6-8 hours of intensive training. Each day includes individualized assessment and goal setting, high-intensity functional exercises, task-specific training, strength and conditioning, balance and coordination work, and family education sessions."
    },
    {
      "id": 4,
      "question": "What kind of support is provided AFTER a RISE bootcamp?",
      "answer": "Our commitment doesn't end when the bootcamp does. Post-bootcamp support includes a detailed home exercise program, ongoing check-ins and progress monitoring, access to our online community and resources, follow-up consultations, and referrals to qualified local therapists when needed."
    },
    {
      "id": 5,
      "question": "Do you accept insurance?",
      "answer": "We accept private pay only. We do not accept any type of insurance at this time."
    }
  ],
  "contact": {
    "title": "Ready to Transform Your Life with RISE?",
    "subtitle": "Take the first step toward recovery or professional development. Our team is here to help you achieve what you thought was impossible.",
    "contactInfo": [
      { "icon": "phone", "label": "Phone", "value": "Contact for phone number" },
      { "icon": "email", "label": "Email", "value": "info@risechangeslives.com" },
      { "icon": "location", "label": "Location", "value": "Multiple locations" }
    ],
    "emergencyNotice": "Medical Emergency: If you are experiencing a medical emergency, please call 911 or go to your nearest emergency room immediately."
  },
  "message": "Content loaded from RISE CMS API"
}`
