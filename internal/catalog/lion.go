package catalog

import "github.com/dentrack/dentrack-go/internal/store"

// Lion rank (kindergarten): 6 required adventures, 14 electives.
var lionCatalog = []store.Requirement{
	// Required adventures (all six must be completed).

	// Bobcat
	{ID: "Bobcat.1", Adventure: "Bobcat", Description: "1. Get to know the members of your den", Required: true},
	{ID: "Bobcat.2", Adventure: "Bobcat", Description: "2. Have your Lion adult partner or den leader read the Scout Law to you. Demonstrate your understanding of being friendly", Required: true},
	{ID: "Bobcat.3", Adventure: "Bobcat", Description: "3. Share with your Lion adult partner, during a den meeting or at home, a time when you have demonstrated the Cub Scout motto 'Do Your Best'", Required: true},
	{ID: "Bobcat.4", Adventure: "Bobcat", Description: "4. At home, with your parent or legal guardian, do the activities in the booklet 'How to Protect Your Children from Child Abuse: A Parent's Guide'", Required: true},

	// Fun on the Run
	{ID: "FunOnTheRun.1", Adventure: "Fun on the Run", Description: "1. Identify the five different food groups", Required: true},
	{ID: "FunOnTheRun.2", Adventure: "Fun on the Run", Description: "2. Practice hand washing. Point out when you should wash your hands", Required: true},
	{ID: "FunOnTheRun.3", Adventure: "Fun on the Run", Description: "3. Be active for 20 minutes", Required: true},
	{ID: "FunOnTheRun.4", Adventure: "Fun on the Run", Description: "4. Practice methods that help you rest", Required: true},

	// Lion's Roar
	{ID: "LionsRoar.1", Adventure: "Lion's Roar", Description: "1. With permission from your parent or legal guardian watch the Protect Yourself Rules video for the Lion rank", Required: true},
	{ID: "LionsRoar.2", Adventure: "Lion's Roar", Description: "2. With your Lion adult partner, demonstrate Shout, Run, Tell as explained in the Protect Yourself Rules video", Required: true},
	{ID: "LionsRoar.3", Adventure: "Lion's Roar", Description: "3. With your Lion adult partner, demonstrate how to access emergency services", Required: true},
	{ID: "LionsRoar.4", Adventure: "Lion's Roar", Description: "4. With your Lion adult partner, demonstrate how to safely cross a street or walk in a parking lot", Required: true},

	// Lion's Pride
	{ID: "LionsPride.1", Adventure: "Lion's Pride", Description: "1. With your parent or legal guardian talk about your family's faith traditions. Draw a picture of your favorite family's faith tradition holiday or celebration", Required: true},
	{ID: "LionsPride.2", Adventure: "Lion's Pride", Description: "2. With your family, attend a religious service OR other gathering that shows how your family expresses Family & Reverence", Required: true},
	{ID: "LionsPride.3", Adventure: "Lion's Pride", Description: "3. Make a cheerful card or a drawing for someone you love and give it to them", Required: true},

	// King of the Jungle
	{ID: "KingOfTheJungle.1", Adventure: "King of the Jungle", Description: "1. Draw a picture or take a photo of the people you live with", Required: true},
	{ID: "KingOfTheJungle.2", Adventure: "King of the Jungle", Description: "2. With your Lion adult partner, choose a job that will help your family. Follow through by doing that job at least once", Required: true},
	{ID: "KingOfTheJungle.3", Adventure: "King of the Jungle", Description: "3. Talk with a grandparent or other older adult about what citizenship means to them", Required: true},
	{ID: "KingOfTheJungle.4", Adventure: "King of the Jungle", Description: "4. Participate in a service project", Required: true},

	// Mountain Lion
	{ID: "MountainLion.1", Adventure: "Mountain Lion", Description: "1. Identify the Cub Scout Six Essentials. Show what you do with each item", Required: true},
	{ID: "MountainLion.2", Adventure: "Mountain Lion", Description: "2. With your den, pack, or family, take a walk outside spending for at least 20 minutes exploring the outdoors with your Cub Scout Six Essentials", Required: true},
	{ID: "MountainLion.3", Adventure: "Mountain Lion", Description: "3. Discover what S.A.W. means", Required: true},
	{ID: "MountainLion.4", Adventure: "Mountain Lion", Description: "4. Identify common animals that are found where you live. Separate those animals into domesticated and wild", Required: true},

	// Elective adventures (complete any two).

	// Build It Up, Knock It Down
	{ID: "BuildItUp.1", Adventure: "Build It Up, Knock It Down", Description: "1. With your Lion adult partner, build a structure"},
	{ID: "BuildItUp.2", Adventure: "Build It Up, Knock It Down", Description: "2. With your den or family, build a structure"},
	{ID: "BuildItUp.3", Adventure: "Build It Up, Knock It Down", Description: "3. Build something that is designed to be knocked down"},

	// Champions for Nature
	{ID: "ChampionsNature.1", Adventure: "Champions for Nature", Description: "1. Discover the difference between natural resources and man-made items"},
	{ID: "ChampionsNature.2", Adventure: "Champions for Nature", Description: "2. Discover the difference between organic, paper, plastic, metal and glass waste"},
	{ID: "ChampionsNature.3", Adventure: "Champions for Nature", Description: "3. Discover recycling"},
	{ID: "ChampionsNature.4", Adventure: "Champions for Nature", Description: "4. Participate in a conservation service project"},

	// Count On Me
	{ID: "CountOnMe.1", Adventure: "Count On Me", Description: "1. Make a Lion using only squares, triangles, and circles"},
	{ID: "CountOnMe.2", Adventure: "Count On Me", Description: "2. Play a game with your Lion adult partner or den that is based on counting or numbers"},
	{ID: "CountOnMe.3", Adventure: "Count On Me", Description: "3. Organize a group of items based on shape, then based on color, and one other category"},

	// Everyday Tech
	{ID: "EverydayTech.1", Adventure: "Everyday Tech", Description: "1. Discover the different types of technology you use everyday"},
	{ID: "EverydayTech.2", Adventure: "Everyday Tech", Description: "2. Learn about digital safety and how to protect yourself online"},
	{ID: "EverydayTech.3", Adventure: "Everyday Tech", Description: "3. Show how you can use technology safely"},

	// Gizmos and Gadgets
	{ID: "GizmosGadgets.1", Adventure: "Gizmos and Gadgets", Description: "1. Explore properties of motion"},
	{ID: "GizmosGadgets.2", Adventure: "Gizmos and Gadgets", Description: "2. Explore properties of force"},
	{ID: "GizmosGadgets.3", Adventure: "Gizmos and Gadgets", Description: "3. Use household materials to create a useful object"},

	// Go Fish
	{ID: "GoFish.1", Adventure: "Go Fish", Description: "1. Discover the different safety rules when you are near or in the water"},
	{ID: "GoFish.2", Adventure: "Go Fish", Description: "2. Draw a picture of a fish. Show your den at your den meeting"},
	{ID: "GoFish.3", Adventure: "Go Fish", Description: "3. Go on a fishing adventure and catch a fish. Or if you can't go fishing, discover different types of fish in your state"},

	// I'll Do It Myself
	{ID: "IllDoItMyself.1", Adventure: "I'll Do It Myself", Description: "1. Show you can do some things all by yourself. Create a Lion bag to hold items you can use to get ready in the morning"},
	{ID: "IllDoItMyself.2", Adventure: "I'll Do It Myself", Description: "2. Create your own personal care checklist that you can use every day"},
	{ID: "IllDoItMyself.3", Adventure: "I'll Do It Myself", Description: "3. Show how to tie your shoes"},

	// Let's Camp Lion
	{ID: "LetsCampLion.1", Adventure: "Let's Camp Lion", Description: "1. With your Lion adult partner, demonstrate the buddy system"},
	{ID: "LetsCampLion.2", Adventure: "Let's Camp Lion", Description: "2. Show what to do if the weather gets bad while you are camping"},
	{ID: "LetsCampLion.3", Adventure: "Let's Camp Lion", Description: "3. With the help of an adult, pack the things that will be needed for a campout"},
	{ID: "LetsCampLion.4", Adventure: "Let's Camp Lion", Description: "4. Go on a campout with your den or family"},

	// On a Roll
	{ID: "OnARoll.1", Adventure: "On a Roll", Description: "1. Identify safety equipment when riding a bicycle"},
	{ID: "OnARoll.2", Adventure: "On a Roll", Description: "2. Learn about the safety rules when riding a bicycle"},
	{ID: "OnARoll.3", Adventure: "On a Roll", Description: "3. Ride a bicycle or use roller skates, scooters, or skateboards safely while wearing safety equipment"},

	// On Your Mark
	{ID: "OnYourMark.1", Adventure: "On Your Mark", Description: "1. Play a game or do an activity with your den that requires teamwork"},
	{ID: "OnYourMark.2", Adventure: "On Your Mark", Description: "2. Do an obstacle course or a relay race with your den"},
	{ID: "OnYourMark.3", Adventure: "On Your Mark", Description: "3. Build and race a box derby car"},

	// Pick My Path
	{ID: "PickMyPath.1", Adventure: "Pick My Path", Description: "1. Explore the difference between choices and consequences"},
	{ID: "PickMyPath.2", Adventure: "Pick My Path", Description: "2. Practice doing a good turn daily"},
	{ID: "PickMyPath.3", Adventure: "Pick My Path", Description: "3. Play a game with your den about making good choices and understanding the rules"},

	// Race Time Lion
	{ID: "RaceTimeLion.1", Adventure: "Race Time Lion", Description: "1. Build a car or a boat with your den or with your Lion adult partner"},
	{ID: "RaceTimeLion.2", Adventure: "Race Time Lion", Description: "2. Learn the rules for your race"},
	{ID: "RaceTimeLion.3", Adventure: "Race Time Lion", Description: "3. Demonstrate good sportsmanship during your race"},
	{ID: "RaceTimeLion.4", Adventure: "Race Time Lion", Description: "4. Participate in a pack race"},

	// Ready, Set, Grow
	{ID: "ReadySetGrow.1", Adventure: "Ready, Set, Grow", Description: "1. Learn about the different sources of food such as plants, animals, or farms"},
	{ID: "ReadySetGrow.2", Adventure: "Ready, Set, Grow", Description: "2. Plant a garden in a pot or a patch. Explore the things that are needed to keep a plant alive and help it grow"},
	{ID: "ReadySetGrow.3", Adventure: "Ready, Set, Grow", Description: "3. Visit a farm, garden, orchard, ranch, or zoo. Share what you learned about plants or animals with your den or family"},

	// Time to Swim
	{ID: "TimeToSwim.1", Adventure: "Time to Swim", Description: "1. Discover the safety rules for swimming"},
	{ID: "TimeToSwim.2", Adventure: "Time to Swim", Description: "2. Show how you enter a pool safely"},
	{ID: "TimeToSwim.3", Adventure: "Time to Swim", Description: "3. Be active in the water for 20 minutes with your family or den"},
	{ID: "TimeToSwim.4", Adventure: "Time to Swim", Description: "4. Put your face under water and blow bubbles"},
	{ID: "TimeToSwim.5", Adventure: "Time to Swim", Description: "5. Show how you can exit a pool safely"},
}
