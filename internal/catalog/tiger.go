package catalog

import "github.com/dentrack/dentrack-go/internal/store"

// Tiger rank (1st grade): 6 required adventures, 17 electives.
var tigerCatalog = []store.Requirement{
	// Required adventures (all six must be completed).

	// Bobcat Tiger
	{ID: "BobcatTiger.1", Adventure: "Bobcat Tiger", Description: "Get to know members of your den.", Required: true},
	{ID: "BobcatTiger.2", Adventure: "Bobcat Tiger", Description: "Recite the Scout Oath and Law with your den and den leader.", Required: true},
	{ID: "BobcatTiger.3", Adventure: "Bobcat Tiger", Description: "Learn about the Scout Oath. Identify the three parts of the Scout Oath.", Required: true},
	{ID: "BobcatTiger.4", Adventure: "Bobcat Tiger", Description: "With your den create a den Code of Conduct.", Required: true},
	{ID: "BobcatTiger.5", Adventure: "Bobcat Tiger", Description: "Demonstrate the Cub Scout sign, Cub Scout salute, and Cub Scout handshake. Show how each is used.", Required: true},
	{ID: "BobcatTiger.6", Adventure: "Bobcat Tiger", Description: "At home, with your parent or legal guardian do the activities in the booklet 'How to Protect Your Children from Child Abuse: A Parent's Guide.'", Required: true},

	// Tiger Bites
	{ID: "TigerBites.1", Adventure: "Tiger Bites", Description: "Identify three foods that you can eat for a meal or snack from each of the following food groups: protein, vegetables, fruits, dairy, and grains.", Required: true},
	{ID: "TigerBites.2", Adventure: "Tiger Bites", Description: "Be active for 30 minutes with your den or at least one other person in a way that includes stretching and moving.", Required: true},
	{ID: "TigerBites.3", Adventure: "Tiger Bites", Description: "Be active for 10 minutes doing personal exercises that include cardio, muscular strength, and flexibility.", Required: true},
	{ID: "TigerBites.4", Adventure: "Tiger Bites", Description: "Do a relaxing activity for 10 minutes.", Required: true},

	// Tiger's Roar
	{ID: "TigersRoar.1", Adventure: "Tiger's Roar", Description: "With permission from your parent or legal guardian, watch the Protect Yourself Rules video for the Tiger rank.", Required: true},
	{ID: "TigersRoar.2", Adventure: "Tiger's Roar", Description: "Complete the Personal Space Bubble worksheet that is part of the Protect Yourself Rules resources.", Required: true},
	{ID: "TigersRoar.3", Adventure: "Tiger's Roar", Description: "Discuss what to do if you become separated from your adult partner or group while in public.", Required: true},
	{ID: "TigersRoar.4", Adventure: "Tiger's Roar", Description: "Share what to do if you encounter a dangerous or uncomfortable situation.", Required: true},

	// Tiger Circles
	{ID: "TigerCircles.1", Adventure: "Tiger Circles", Description: "Gather the items you need for a circle with an adult partner or other family members. Then, with your family, make a circle.", Required: true},
	{ID: "TigerCircles.2", Adventure: "Tiger Circles", Description: "With your adult partner or other family members, discover one of the reasons people gather in a circle to discuss faith.", Required: true},
	{ID: "TigerCircles.3", Adventure: "Tiger Circles", Description: "With your family, do an act of kindness or service for someone.", Required: true},

	// Team Tiger
	{ID: "TeamTiger.1", Adventure: "Team Tiger", Description: "With your den, discuss the history and meaning of the United States flag. Demonstrate how to properly display the flag, and how to fold it.", Required: true},
	{ID: "TeamTiger.2", Adventure: "Team Tiger", Description: "Participate in a flag ceremony.", Required: true},
	{ID: "TeamTiger.3", Adventure: "Team Tiger", Description: "Learn about someone's job and what they do to help others.", Required: true},
	{ID: "TeamTiger.4", Adventure: "Team Tiger", Description: "With your den or family, do something to help the people in your local community or find out about organizations that help others.", Required: true},

	// Tigers in the Wild
	{ID: "TigersInTheWild.1", Adventure: "Tigers in the Wild", Description: "With your den, identify what you need for a 1-mile walk outside. Gather your Cub Scout Six Essentials and weather appropriate clothing and shoes.", Required: true},
	{ID: "TigersInTheWild.2", Adventure: "Tigers in the Wild", Description: "Learn what SAW (Stay, Answer, Whistle) means.", Required: true},
	{ID: "TigersInTheWild.3", Adventure: "Tigers in the Wild", Description: "Learn the Leave No Trace Principles for Kids and your responsibility to protect the outdoors for future generations.", Required: true},
	{ID: "TigersInTheWild.4", Adventure: "Tigers in the Wild", Description: "Identify three animals and insects that might harm you or make you sick on the outside adventure. Explain how you can help protect yourself from each.", Required: true},
	{ID: "TigersInTheWild.5", Adventure: "Tigers in the Wild", Description: "Go on a 1-mile walk outside with your den or family.", Required: true},

	// Elective adventures (complete any two).

	// Champions for Nature Tiger
	{ID: "ChampionsNatureTiger.1", Adventure: "Champions for Nature Tiger", Description: "Play a game where you are an animal that needs to find food, water, shelter, and space."},
	{ID: "ChampionsNatureTiger.2", Adventure: "Champions for Nature Tiger", Description: "Discover an animal that is threatened or endangered. Learn how you can help."},
	{ID: "ChampionsNatureTiger.3", Adventure: "Champions for Nature Tiger", Description: "Visit a zoo, a wild animal park, or another natural place. Tell what you saw while you were there."},
	{ID: "ChampionsNatureTiger.4", Adventure: "Champions for Nature Tiger", Description: "Participate in a conservation service project."},

	// Curiosity, Intrigue, and Magical Mysteries
	{ID: "CuriosityIntrigue.1", Adventure: "Curiosity, Intrigue, and Magical Mysteries", Description: "Learn a magic trick. Show your den or family."},
	{ID: "CuriosityIntrigue.2", Adventure: "Curiosity, Intrigue, and Magical Mysteries", Description: "Create a poster or picture showing what you like about magic."},
	{ID: "CuriosityIntrigue.3", Adventure: "Curiosity, Intrigue, and Magical Mysteries", Description: "Learn a new skill. Show it to your den or family."},
	{ID: "CuriosityIntrigue.4", Adventure: "Curiosity, Intrigue, and Magical Mysteries", Description: "Make an art sculpture or craft project."},
	{ID: "CuriosityIntrigue.5", Adventure: "Curiosity, Intrigue, and Magical Mysteries", Description: "Watch a magic show."},

	// Designed by Tiger
	{ID: "DesignedByTiger.1", Adventure: "Designed by Tiger", Description: "Discover what an architect does."},
	{ID: "DesignedByTiger.2", Adventure: "Designed by Tiger", Description: "Look at a house or building from the outside and identify three different geometric shapes you see."},
	{ID: "DesignedByTiger.3", Adventure: "Designed by Tiger", Description: "Build a free-standing, tower structure at least 12 inches tall."},
	{ID: "DesignedByTiger.4", Adventure: "Designed by Tiger", Description: "Make a cardboard model of a room in a home."},

	// Fish On
	{ID: "FishOn.1", Adventure: "Fish On", Description: "Discover how to get a fishing license, what kinds of fish can be caught, and what the laws are where you want to go fishing."},
	{ID: "FishOn.2", Adventure: "Fish On", Description: "Discover the different types of fishing gear."},
	{ID: "FishOn.3", Adventure: "Fish On", Description: "Make a simple fishing pole."},
	{ID: "FishOn.4", Adventure: "Fish On", Description: "Go on a fishing adventure with your den or with your family, and catch a fish."},

	// Floats and Boats
	{ID: "FloatsBoats.1", Adventure: "Floats and Boats", Description: "Discover what makes something sink or float."},
	{ID: "FloatsBoats.2", Adventure: "Floats and Boats", Description: "Make a boat out of recycled materials."},
	{ID: "FloatsBoats.3", Adventure: "Floats and Boats", Description: "Make a boat move without touching it."},
	{ID: "FloatsBoats.4", Adventure: "Floats and Boats", Description: "Learn the rules for boating safety and what to do in case of an emergency."},
	{ID: "FloatsBoats.5", Adventure: "Floats and Boats", Description: "Discover what a life jacket is and how to wear it safely."},

	// Good Knights
	{ID: "GoodKnights.1", Adventure: "Good Knights", Description: "Learn about chivalry and knights. Learn how chivalry relates to how we behave today."},
	{ID: "GoodKnights.2", Adventure: "Good Knights", Description: "Create your own code of conduct."},
	{ID: "GoodKnights.3", Adventure: "Good Knights", Description: "Make a medieval sword and shield."},
	{ID: "GoodKnights.4", Adventure: "Good Knights", Description: "Participate in a game or games that use a medieval theme."},

	// Let's Camp Tiger
	{ID: "LetsCampTiger.1", Adventure: "Let's Camp Tiger", Description: "Discover what to bring to a campout."},
	{ID: "LetsCampTiger.2", Adventure: "Let's Camp Tiger", Description: "Discover what you need to sleep comfortably outdoors."},
	{ID: "LetsCampTiger.3", Adventure: "Let's Camp Tiger", Description: "Learn how to set up a tent. Help put one up."},
	{ID: "LetsCampTiger.4", Adventure: "Let's Camp Tiger", Description: "Participate in an outdoor campout with your den or family."},

	// Race Time Tiger
	{ID: "RaceTimeTiger.1", Adventure: "Race Time Tiger", Description: "With an adult, build either a Pinewood Derby car or a Raingutter Regatta boat."},
	{ID: "RaceTimeTiger.2", Adventure: "Race Time Tiger", Description: "Learn the rules of the race for the vehicle chosen in requirement 1."},
	{ID: "RaceTimeTiger.3", Adventure: "Race Time Tiger", Description: "Before the race, discuss with your den how you will demonstrate good sportsmanship."},
	{ID: "RaceTimeTiger.4", Adventure: "Race Time Tiger", Description: "Participate in a Pinewood Derby or a Raingutter Regatta."},
	{ID: "RaceTimeTiger.5", Adventure: "Race Time Tiger", Description: "Cheer for others who participate."},

	// Rolling Tigers
	{ID: "RollingTigers.1", Adventure: "Rolling Tigers", Description: "With your den or family, pick one type of wheeled vehicle and explore how it moves by doing one of the following: rolling, pedaling, or being pulled."},
	{ID: "RollingTigers.2", Adventure: "Rolling Tigers", Description: "Discover how to stay safe when you are riding a bike or scooter."},
	{ID: "RollingTigers.3", Adventure: "Rolling Tigers", Description: "Go on a bike or scooter ride with your family or den."},
	{ID: "RollingTigers.4", Adventure: "Rolling Tigers", Description: "Make a wheeled vehicle."},

	// Safe and Smart
	{ID: "SafeAndSmart.1", Adventure: "Safe and Smart", Description: "Do the following: 1a. With your parent or legal guardian, complete the exercises in 'How to Protect Your Children from Child Abuse: A Parent's Guide.' 1b. Learn about tricky people."},
	{ID: "SafeAndSmart.2", Adventure: "Safe and Smart", Description: "Learn what to do if you become lost."},
	{ID: "SafeAndSmart.3", Adventure: "Safe and Smart", Description: "Learn about fire and burn safety. Make a fire escape plan with your family."},
	{ID: "SafeAndSmart.4", Adventure: "Safe and Smart", Description: "Learn about stranger danger."},
	{ID: "SafeAndSmart.5", Adventure: "Safe and Smart", Description: "Learn what to do if there is an emergency at home."},

	// Sky is the Limit
	{ID: "SkyIsTheLimit.1", Adventure: "Sky is the Limit", Description: "Explore what people can see in the sky."},
	{ID: "SkyIsTheLimit.2", Adventure: "Sky is the Limit", Description: "Observe the sky during the day and night."},
	{ID: "SkyIsTheLimit.3", Adventure: "Sky is the Limit", Description: "Make and use a pinhole projector or use a telescope to observe the moon."},
	{ID: "SkyIsTheLimit.4", Adventure: "Sky is the Limit", Description: "Discover what controls the weather."},
	{ID: "SkyIsTheLimit.5", Adventure: "Sky is the Limit", Description: "Learn about clouds and what they mean to weather. Watch the clouds and record what you see."},

	// Stories in Shapes
	{ID: "StoriesInShapes.1", Adventure: "Stories in Shapes", Description: "Explore what shapes are and how they are used."},
	{ID: "StoriesInShapes.2", Adventure: "Stories in Shapes", Description: "Make a picture using shapes."},
	{ID: "StoriesInShapes.3", Adventure: "Stories in Shapes", Description: "Find shapes in nature."},
	{ID: "StoriesInShapes.4", Adventure: "Stories in Shapes", Description: "Create a piece of art by combining different shapes."},

	// Summertime Fun Tiger
	{ID: "SummertimeFunTiger.1", Adventure: "Summertime Fun Tiger", Description: "Anytime during May through August participate in a total of three Cub Scout activities."},

	// Tech All Around
	{ID: "TechAllAround.1", Adventure: "Tech All Around", Description: "Discover what technology is and how people use it in their lives."},
	{ID: "TechAllAround.2", Adventure: "Tech All Around", Description: "Learn about the SAFE technology rules."},
	{ID: "TechAllAround.3", Adventure: "Tech All Around", Description: "Make a list of devices you and your family use."},
	{ID: "TechAllAround.4", Adventure: "Tech All Around", Description: "Learn how to find people who can help you with technology questions."},

	// Tiger Tag
	{ID: "TigerTag.1", Adventure: "Tiger Tag", Description: "With your den or with your family, play a game of tag."},
	{ID: "TigerTag.2", Adventure: "Tiger Tag", Description: "Learn about being a good sport."},
	{ID: "TigerTag.3", Adventure: "Tiger Tag", Description: "Make up a new version of tag and play it with your den."},
	{ID: "TigerTag.4", Adventure: "Tiger Tag", Description: "Learn about eye safety."},
	{ID: "TigerTag.5", Adventure: "Tiger Tag", Description: "During a den meeting or den outing, demonstrate how to use one of the following: A) an athletic cup, B) a mouthguard, C) safety glasses, or D) a protective helmet."},

	// Tiger-iffic!
	{ID: "Tigeriffic.1", Adventure: "Tiger-iffic!", Description: "Play a board game or another inside game with one or more members of your den."},
	{ID: "Tigeriffic.2", Adventure: "Tiger-iffic!", Description: "With your adult partner or other family members, discover how to stay safe when using the internet."},
	{ID: "Tigeriffic.3", Adventure: "Tiger-iffic!", Description: "Build a cardboard or pillow fort with the members of your den or family."},
	{ID: "Tigeriffic.4", Adventure: "Tiger-iffic!", Description: "Make a family scrapbook."},
	{ID: "Tigeriffic.5", Adventure: "Tiger-iffic!", Description: "Visit a library or bookstore with your adult partner or den. Discover the different types of books you can check out or read."},

	// Tigers in the Water
	{ID: "TigersInTheWater.1", Adventure: "Tigers in the Water", Description: "State the safety precautions you need to take before doing any water activity."},
	{ID: "TigersInTheWater.2", Adventure: "Tigers in the Water", Description: "Explain the meaning of 'order of rescue' and demonstrate reaching and throwing rescue techniques from land."},
	{ID: "TigersInTheWater.3", Adventure: "Tigers in the Water", Description: "Attempt to glide at least 3 feet across the water."},
	{ID: "TigersInTheWater.4", Adventure: "Tigers in the Water", Description: "Have 30 minutes, or more, of free swim time where you practice the buddy system and stay within your ability group."},
}
