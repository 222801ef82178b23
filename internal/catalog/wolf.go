package catalog

import "github.com/dentrack/dentrack-go/internal/store"

// Wolf rank (2nd grade): 6 required adventures, 17 electives.
var wolfCatalog = []store.Requirement{
	// Required adventures (all six must be completed).

	// Bobcat Wolf
	{ID: "BobcatWolf.1", Adventure: "Bobcat Wolf", Description: "Get to know members of your den.", Required: true},
	{ID: "BobcatWolf.2", Adventure: "Bobcat Wolf", Description: "Recite the Scout Oath and Law with your den and den leader.", Required: true},
	{ID: "BobcatWolf.3", Adventure: "Bobcat Wolf", Description: "Learn about the Scout Oath and Scout Law. Discover what the Scout Law means.", Required: true},
	{ID: "BobcatWolf.4", Adventure: "Bobcat Wolf", Description: "With your den create a den Code of Conduct.", Required: true},
	{ID: "BobcatWolf.5", Adventure: "Bobcat Wolf", Description: "Learn about the denner position and responsibilities.", Required: true},
	{ID: "BobcatWolf.6", Adventure: "Bobcat Wolf", Description: "Demonstrate the Cub Scout sign, Cub Scout salute, and Cub Scout handshake. Show how each is used.", Required: true},
	{ID: "BobcatWolf.7", Adventure: "Bobcat Wolf", Description: "At home, with your parent or legal guardian do the activities in the booklet 'How to Protect Your Children from Child Abuse: A Parent's Guide.'", Required: true},

	// Running With the Pack
	{ID: "RunningWithThePack.1", Adventure: "Running With the Pack", Description: "Sample foods from each of the following food groups: protein, vegetables, fruits, dairy, and grains.", Required: true},
	{ID: "RunningWithThePack.2", Adventure: "Running With the Pack", Description: "Be active for 30 minutes with your den or at least one other person that includes both stretching and moving.", Required: true},
	{ID: "RunningWithThePack.3", Adventure: "Running With the Pack", Description: "Be active for 15 minutes doing personal exercises that include cardio, muscular strength, and flexibility.", Required: true},
	{ID: "RunningWithThePack.4", Adventure: "Running With the Pack", Description: "Do a relaxing activity for 10 minutes.", Required: true},
	{ID: "RunningWithThePack.5", Adventure: "Running With the Pack", Description: "Review your Scouting America Annual Health and Medical record with your parent or guardian. Discuss your ability to participate in den and pack activities.", Required: true},
	{ID: "RunningWithThePack.6", Adventure: "Running With the Pack", Description: "Learn what it means to be physically fit.", Required: true},

	// Safety in Numbers
	{ID: "SafetyInNumbers.1", Adventure: "Safety in Numbers", Description: "With permission from your parent or legal guardian, watch the Protect Yourself Rules video for the Wolf rank.", Required: true},
	{ID: "SafetyInNumbers.2", Adventure: "Safety in Numbers", Description: "Complete the Personal Space Bubble worksheet that is part of the Protect Yourself Rules resources.", Required: true},
	{ID: "SafetyInNumbers.3", Adventure: "Safety in Numbers", Description: "With your parent or legal guardian, set up a family policy for digital devices.", Required: true},
	{ID: "SafetyInNumbers.4", Adventure: "Safety in Numbers", Description: "Learn the buddy system for different types of activities, including outdoor activities, school activities, online interactions, and everyday interactions with others.", Required: true},

	// Footsteps
	{ID: "Footsteps.1", Adventure: "Footsteps", Description: "With your parent or legal guardian, talk about your family's faith traditions. Identify three holidays or celebrations that are part of your family's faith traditions. Make a craft, work of art, or a food item that is part of your favorite family's faith tradition, holiday, or celebration.", Required: true},
	{ID: "Footsteps.2", Adventure: "Footsteps", Description: "With your family, attend a religious service OR other gathering that shows how your family expresses reverence.", Required: true},
	{ID: "Footsteps.3", Adventure: "Footsteps", Description: "Carry out an act of kindness.", Required: true},
	{ID: "Footsteps.4", Adventure: "Footsteps", Description: "With your parent or legal guardian identify a religion or faith that is different from your own. Determine two things that it has in common with your family's beliefs.", Required: true},

	// Council Fire
	{ID: "CouncilFire.1", Adventure: "Council Fire", Description: "Discover what being a good citizen means.", Required: true},
	{ID: "CouncilFire.2", Adventure: "Council Fire", Description: "Demonstrate good citizenship by showing respect for the flag of the United States of America. Show how to properly display it and how to fold it.", Required: true},
	{ID: "CouncilFire.3", Adventure: "Council Fire", Description: "Participate in a flag ceremony.", Required: true},
	{ID: "CouncilFire.4", Adventure: "Council Fire", Description: "Learn about the mission of any non-profit. Find out how they fund their activities and how volunteers are used to help.", Required: true},
	{ID: "CouncilFire.5", Adventure: "Council Fire", Description: "Participate in a service project.", Required: true},
	{ID: "CouncilFire.6", Adventure: "Council Fire", Description: "Discover a state symbol. Make a model, work of art, or other craft that depicts the symbol you chose.", Required: true},

	// Paws on the Path
	{ID: "PawsOnThePath.1", Adventure: "Paws on the Path", Description: "Prepare for a one-mile walk by gathering the Cub Scout Six Essentials and weather appropriate clothing and shoes.", Required: true},
	{ID: "PawsOnThePath.2", Adventure: "Paws on the Path", Description: "Learn what SAW (Stay, Answer, Whistle) means. Discover when you might need to use it.", Required: true},
	{ID: "PawsOnThePath.3", Adventure: "Paws on the Path", Description: "Discover the Leave No Trace Principles for Kids and your responsibility to protect the outdoors for future generations.", Required: true},
	{ID: "PawsOnThePath.4", Adventure: "Paws on the Path", Description: "Go on your one-mile walk while practicing the Leave No Trace Principles for Kids.", Required: true},
	{ID: "PawsOnThePath.5", Adventure: "Paws on the Path", Description: "After your walk, make a list of three things you saw on your walk and share it with your family.", Required: true},

	// Elective adventures (complete any two).

	// A Wolf Goes Fishing
	{ID: "AWolfGoesFishing.1", Adventure: "A Wolf Goes Fishing", Description: "Make a plan to go fishing. Determine where you will go and what type of fish you plan to catch. All of the following requirements are to be completed based on your choice."},
	{ID: "AWolfGoesFishing.2", Adventure: "A Wolf Goes Fishing", Description: "Use the Scouting America S.A.F.E. Checklist to plan what you need for your fishing experience."},
	{ID: "AWolfGoesFishing.3", Adventure: "A Wolf Goes Fishing", Description: "Choose a design, gather materials, and make a fishing lure or fly."},
	{ID: "AWolfGoesFishing.4", Adventure: "A Wolf Goes Fishing", Description: "Following local and state guidelines, go on a fishing adventure with your den or family. Follow all fishing regulations and proper fish handling techniques."},

	// Adventures in Coins
	{ID: "AdventuresInCoins.1", Adventure: "Adventures in Coins", Description: "Identify different parts of a coin."},
	{ID: "AdventuresInCoins.2", Adventure: "Adventures in Coins", Description: "Find the mint mark on a coin; identify what mint facility it came from and what year it was made."},
	{ID: "AdventuresInCoins.3", Adventure: "Adventures in Coins", Description: "Choose a coin that interests you, and make a coin rubbing. List information next to the coin detailing the pictures on it, the year it was made, and the mint where it was made."},
	{ID: "AdventuresInCoins.4", Adventure: "Adventures in Coins", Description: "Play a coin game."},
	{ID: "AdventuresInCoins.5", Adventure: "Adventures in Coins", Description: "Create a balance scale and show how it balances."},

	// Air of the Wolf
	{ID: "AirOfTheWolf.1", Adventure: "Air of the Wolf", Description: "Conduct an investigation on how well different materials insulate against heat loss."},
	{ID: "AirOfTheWolf.2", Adventure: "Air of the Wolf", Description: "Conduct an investigation on what happens when air is warmed."},
	{ID: "AirOfTheWolf.3", Adventure: "Air of the Wolf", Description: "Make and record observations of weather conditions over a one-week period."},
	{ID: "AirOfTheWolf.4", Adventure: "Air of the Wolf", Description: "Participate in a total of three Cub Scout activities at home, at school, or in your community during the months of June, July, and August."},

	// Champions for Nature Wolf
	{ID: "ChampionsNatureWolf.1", Adventure: "Champions for Nature Wolf", Description: "Discover the four components that make up a habitat: food, water, shelter, space."},
	{ID: "ChampionsNatureWolf.2", Adventure: "Champions for Nature Wolf", Description: "Pick an animal that is currently threatened or endangered to complete requirements 3, 4, and 5."},
	{ID: "ChampionsNatureWolf.3", Adventure: "Champions for Nature Wolf", Description: "Identify the characteristics that classify an animal as a threatened or endangered species."},
	{ID: "ChampionsNatureWolf.4", Adventure: "Champions for Nature Wolf", Description: "Explore what caused this animal to be threatened or endangered."},
	{ID: "ChampionsNatureWolf.5", Adventure: "Champions for Nature Wolf", Description: "Research what is currently being done to protect the animal and participate in a conservation service project."},

	// Code of the Wolf
	{ID: "CodeOfTheWolf.1", Adventure: "Code of the Wolf", Description: "Discover what it means to be a good digital citizen."},
	{ID: "CodeOfTheWolf.2", Adventure: "Code of the Wolf", Description: "Demonstrate your knowledge of cyberbullying and what you can do when you see it."},
	{ID: "CodeOfTheWolf.3", Adventure: "Code of the Wolf", Description: "With the help of your parent or legal guardian, send an email message to someone."},
	{ID: "CodeOfTheWolf.4", Adventure: "Code of the Wolf", Description: "With your den or an adult, use the internet to find information on a topic of interest to you, or play a game or other activity."},

	// Computing Wolves
	{ID: "ComputingWolves.1", Adventure: "Computing Wolves", Description: "Do the following: 1a. Visit a company, organization, or institution where you can observe how technology is used and talk to someone who works there. 1b. Identify how technology is utilized to solve a problem or make something better."},
	{ID: "ComputingWolves.2", Adventure: "Computing Wolves", Description: "Explore with your den or an adult how to stay safe when using the internet."},
	{ID: "ComputingWolves.3", Adventure: "Computing Wolves", Description: "Do the following: 3a. With the help of your parent or legal guardian, watch a video or read a book about computer coding or a coder. 3b. Discuss what you learned about coding or coders."},
	{ID: "ComputingWolves.4", Adventure: "Computing Wolves", Description: "Create an algorithm for a device in your everyday life."},
	{ID: "ComputingWolves.5", Adventure: "Computing Wolves", Description: "Find out where the CPU and motherboard are located in your computer."},

	// Cubs Who Care
	{ID: "CubsWhoCare.1", Adventure: "Cubs Who Care", Description: "Visit a nature center, zoo, or another facility that cares for animals. During your visit, talk to someone who works with the animals."},
	{ID: "CubsWhoCare.2", Adventure: "Cubs Who Care", Description: "Learn what it takes to care for a pet in your home. Make a poster about the care needed by your pet or a pet that you would like to have."},
	{ID: "CubsWhoCare.3", Adventure: "Cubs Who Care", Description: "Learn about the care that aquarium fish need. OR Learn about the care that fish in the wild need in order to stay healthy."},
	{ID: "CubsWhoCare.4", Adventure: "Cubs Who Care", Description: "Discover what 'cruelty to animals' means."},

	// Digging in the Past
	{ID: "DiggingInThePast.1", Adventure: "Digging in the Past", Description: "Discover what archeology is and what an archeologist does. Learn about a archeologist or paleontologist and what he or she is working on."},
	{ID: "DiggingInThePast.2", Adventure: "Digging in the Past", Description: "Learn about the history of your community, a building in your community, or a street in your community. Draw or create a model of your artifact."},
	{ID: "DiggingInThePast.3", Adventure: "Digging in the Past", Description: "Create a record of the history of Scouting in your family."},
	{ID: "DiggingInThePast.4", Adventure: "Digging in the Past", Description: "Examine how an archeologist records things and make a record of an artifact at home or a location where you live."},

	// Finding Your Way
	{ID: "FindingYourWay.1", Adventure: "Finding Your Way", Description: "Explore how to find directions using a compass. Discover how to determine cardinal directions without a compass."},
	{ID: "FindingYourWay.2", Adventure: "Finding Your Way", Description: "Identify all of the cardinal directions on a map. Locate three different places you would like to visit on the map."},
	{ID: "FindingYourWay.3", Adventure: "Finding Your Way", Description: "Create a map of your neighborhood. Show natural and manmade features."},
	{ID: "FindingYourWay.4", Adventure: "Finding Your Way", Description: "Use a map and compass or a GPS to go on a hike or outdoor adventure with your family or den."},

	// Germs Alive!
	{ID: "GermsAlive.1", Adventure: "Germs Alive!", Description: "Discover what germs are and how they affect your body."},
	{ID: "GermsAlive.2", Adventure: "Germs Alive!", Description: "Demonstrate proper hand-washing techniques. Explain why hand washing is important."},
	{ID: "GermsAlive.3", Adventure: "Germs Alive!", Description: "Conduct an investigation to discover what happens when you don't wash your hands. Share what you learned."},
	{ID: "GermsAlive.4", Adventure: "Germs Alive!", Description: "Learn about how immunizations work to prevent disease."},

	// Let's Camp Wolf
	{ID: "LetsCampWolf.1", Adventure: "Let's Camp Wolf", Description: "With your den, pack, or family, plan and participate in a campout."},
	{ID: "LetsCampWolf.2", Adventure: "Let's Camp Wolf", Description: "Upon arrival at the campground, determine where to set up your tent."},
	{ID: "LetsCampWolf.3", Adventure: "Let's Camp Wolf", Description: "Set up your tent with the help of an adult. Determine a safe place to put your camping equipment inside the tent."},
	{ID: "LetsCampWolf.4", Adventure: "Let's Camp Wolf", Description: "Upon arrival at the campground, discuss with an adult what makes a good campfire location and determine a safe place to build a campfire."},
	{ID: "LetsCampWolf.5", Adventure: "Let's Camp Wolf", Description: "After your campout, share the things you did to follow the Outdoor Code and Leave No Trace Principles for Kids with your den or family."},

	// Paws for Water
	{ID: "PawsForWater.1", Adventure: "Paws for Water", Description: "State the safety precautions you need to take before doing any water activity."},
	{ID: "PawsForWater.2", Adventure: "Paws for Water", Description: "Explain the meaning of 'order of rescue' and demonstrate reaching and throwing rescue techniques from land."},
	{ID: "PawsForWater.3", Adventure: "Paws for Water", Description: "Attempt to float on your back with minimum movement for at least 15 seconds."},
	{ID: "PawsForWater.4", Adventure: "Paws for Water", Description: "Have 30 minutes, or more, of free swim time where you practice the buddy system and stay within your ability group. The qualified adult supervision should conduct at least three buddy checks per half hour swimming."},

	// Paws of Skill
	{ID: "PawsOfSkill.1", Adventure: "Paws of Skill", Description: "Learn about the history of the American circus and discover the different acts. OR Learn about the history of another circus, such as the Chinese or Mexican circus, and discover the different acts."},
	{ID: "PawsOfSkill.2", Adventure: "Paws of Skill", Description: "Balance yourself on one foot for 30 seconds; then do this on the other foot."},
	{ID: "PawsOfSkill.3", Adventure: "Paws of Skill", Description: "Practice juggling with at least two juggling balls or bean bags."},
	{ID: "PawsOfSkill.4", Adventure: "Paws of Skill", Description: "Walk 10 steps on a line or make a line and walk 10 steps backwards on the line."},

	// Pedal With the Pack
	{ID: "PedalWithThePack.1", Adventure: "Pedal With the Pack", Description: "Discover what gear and supplies you should bring for a long bike ride."},
	{ID: "PedalWithThePack.2", Adventure: "Pedal With the Pack", Description: "Explain safety rules for using your bike."},
	{ID: "PedalWithThePack.3", Adventure: "Pedal With the Pack", Description: "Show how to wear the proper safety equipment for bike riding."},
	{ID: "PedalWithThePack.4", Adventure: "Pedal With the Pack", Description: "With your den, pack, or family and using the buddy system, go on a bike ride that is at least 2 miles."},

	// Race Time Wolf
	{ID: "RaceTimeWolf.1", Adventure: "Race Time Wolf", Description: "With an adult, build either a Pinewood Derby car or a Raingutter Regatta boat."},
	{ID: "RaceTimeWolf.2", Adventure: "Race Time Wolf", Description: "Learn the rules of the race for the vehicle chosen in requirement 1."},
	{ID: "RaceTimeWolf.3", Adventure: "Race Time Wolf", Description: "Before the race, discuss with your den how you will demonstrate good sportsmanship during the race."},
	{ID: "RaceTimeWolf.4", Adventure: "Race Time Wolf", Description: "Participate in a Pinewood Derby or a Raingutter Regatta."},
	{ID: "RaceTimeWolf.5", Adventure: "Race Time Wolf", Description: "Cheer for others who participate."},

	// Spirit of the Water
	{ID: "SpiritOfTheWater.1", Adventure: "Spirit of the Water", Description: "State the safety precautions you need to take before participating in boating."},
	{ID: "SpiritOfTheWater.2", Adventure: "Spirit of the Water", Description: "Discover what it means to be a responsible boater and how you can demonstrate being a responsible boater on the water."},
	{ID: "SpiritOfTheWater.3", Adventure: "Spirit of the Water", Description: "Explain the buddy system when boating."},
	{ID: "SpiritOfTheWater.4", Adventure: "Spirit of the Water", Description: "While wearing a life jacket, explore the different swimming strokes used in various boats. Pretend that you are canoeing, kayaking, stand-up paddleboarding, or rowing."},

	// Summertime Fun Wolf
	{ID: "SummertimeFunWolf.1", Adventure: "Summertime Fun Wolf", Description: "Anytime during May through August participate in a total of three Cub Scout activities."},
}
