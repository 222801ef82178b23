package catalog

import "github.com/dentrack/dentrack-go/internal/store"

// Webelos rank (4th grade): 6 required adventures, 17 electives.
var webelosCatalog = []store.Requirement{
	// Required adventures (all six must be completed).

	// Bobcat Adventure
	{ID: "BobcatWebelos.1", Adventure: "Bobcat Adventure", Description: "Get to know members of your den.", Required: true},
	{ID: "BobcatWebelos.2", Adventure: "Bobcat Adventure", Description: "Recite the Scout Oath and the Scout Law with your den and den leader. Describe the three points of the Scout Oath.", Required: true},
	{ID: "BobcatWebelos.3", Adventure: "Bobcat Adventure", Description: "Learn about the Scout Law.", Required: true},
	{ID: "BobcatWebelos.4", Adventure: "Bobcat Adventure", Description: "With your den create a den Code of Conduct.", Required: true},
	{ID: "BobcatWebelos.5", Adventure: "Bobcat Adventure", Description: "Learn about the denner position and responsibilities.", Required: true},
	{ID: "BobcatWebelos.6", Adventure: "Bobcat Adventure", Description: "Demonstrate the Cub Scout sign, Cub Scout salute and Cub Scout handshake. Show how each is used.", Required: true},
	{ID: "BobcatWebelos.7", Adventure: "Bobcat Adventure", Description: "At home, with your parent or legal guardian do the activities in the booklet 'How to Protect Your Children from Child Abuse: A Parent's Guide.'", Required: true},

	// Stronger, Faster, Higher
	{ID: "StrongerFasterHigher.1", Adventure: "Stronger, Faster, Higher", Description: "With your den or family, plan, cook, and eat a balanced meal.", Required: true},
	{ID: "StrongerFasterHigher.2", Adventure: "Stronger, Faster, Higher", Description: "Be active for 30 minutes with your den or at least one other person in a way that includes both stretching and moving.", Required: true},
	{ID: "StrongerFasterHigher.3", Adventure: "Stronger, Faster, Higher", Description: "Be active for 15 minutes doing personal exercises that boost your heart rate, use your muscles, and work on flexibility.", Required: true},
	{ID: "StrongerFasterHigher.4", Adventure: "Stronger, Faster, Higher", Description: "Do a relaxing activity for 10 minutes.", Required: true},
	{ID: "StrongerFasterHigher.5", Adventure: "Stronger, Faster, Higher", Description: "Review your Scouting America Annual Health and Medical Record with your parent or legal guardian. Discuss your ability to participate in den and pack activities.", Required: true},

	// My Safety
	{ID: "MySafety.1", Adventure: "My Safety", Description: "With permission from your parent or legal guardian, watch the Protect Yourself Rules video for the Webelos rank.", Required: true},
	{ID: "MySafety.2", Adventure: "My Safety", Description: "Identify items in your house that are hazardous and make sure they are stored properly. Identify on the package where it describes what to do if someone is accidentally exposed to them.", Required: true},
	{ID: "MySafety.3", Adventure: "My Safety", Description: "Identify ways you and your family keep your home or your meeting space safe.", Required: true},
	{ID: "MySafety.4", Adventure: "My Safety", Description: "Complete the Be Prepared for Natural Events worksheet. Complete a worksheet for at least two natural events most likely to happen near where you live.", Required: true},

	// My Family
	{ID: "MyFamily.1", Adventure: "My Family", Description: "With your parent or legal guardian, talk about your family's faith traditions. Identify three holidays or celebrations that are part of your family's faith traditions. Make a craft, work of art, or a food item that is part of your family's faith traditions.", Required: true},
	{ID: "MyFamily.2", Adventure: "My Family", Description: "Carry out an act of kindness.", Required: true},
	{ID: "MyFamily.3", Adventure: "My Family", Description: "With your parent or legal guardian identify a religion or faith that is different from your own. Identify two things that it has in common with your family's beliefs.", Required: true},
	{ID: "MyFamily.4", Adventure: "My Family", Description: "Discuss with your parent or legal guardian what it means to be reverent. Tell how you practice being reverent in your daily life.", Required: true},

	// My Community
	{ID: "MyCommunity.1", Adventure: "My Community", Description: "Learn about majority and plurality types of voting.", Required: true},
	{ID: "MyCommunity.2", Adventure: "My Community", Description: "Speak with someone who is elected to their position. Discover the type of voting that was used to elect them and why.", Required: true},
	{ID: "MyCommunity.3", Adventure: "My Community", Description: "Choose a federal law and create a timeline of the history of the law. Include the involvement of the 3 branches of government.", Required: true},
	{ID: "MyCommunity.4", Adventure: "My Community", Description: "Participate in a service project.", Required: true},

	// Webelos Walkabout
	{ID: "WebelosWalkabout.1", Adventure: "Webelos Walkabout", Description: "Prepare for a 2-mile walk outside. Gather your Cub Scout Six Essentials and weather appropriate clothing and shoes.", Required: true},
	{ID: "WebelosWalkabout.2", Adventure: "Webelos Walkabout", Description: "Plan a 2-mile route for your walk.", Required: true},
	{ID: "WebelosWalkabout.3", Adventure: "Webelos Walkabout", Description: "Check the weather forecast for the time of your planned 2-mile walk.", Required: true},
	{ID: "WebelosWalkabout.4", Adventure: "Webelos Walkabout", Description: "Review the four points of Scouting America SAFE Checklist and how you will apply them on your 2-mile walk.", Required: true},
	{ID: "WebelosWalkabout.5", Adventure: "Webelos Walkabout", Description: "Demonstrate first aid for each of the following events that could occur on your 2-mile walk: blister, sprained ankle, sunburn, dehydration and heat related illness.", Required: true},
	{ID: "WebelosWalkabout.6", Adventure: "Webelos Walkabout", Description: "With your den, pack, or family, go on your 2-mile walk while practicing the Leave No Trace Principles for Kids and Outdoor Code.", Required: true},
	{ID: "WebelosWalkabout.7", Adventure: "Webelos Walkabout", Description: "After your 2-mile walk, discuss with your den what went well and what you would do differently next time.", Required: true},

	// Elective adventures (complete any two).

	// Aquanaut
	{ID: "Aquanaut.1", Adventure: "Aquanaut", Description: "State the safety precautions you need to take before doing any swimming activity."},
	{ID: "Aquanaut.2", Adventure: "Aquanaut", Description: "Explain the meaning of 'order of rescue' and demonstrate the reach and throw rescue techniques from land."},
	{ID: "Aquanaut.3", Adventure: "Aquanaut", Description: "Learn how to prevent and treat hypothermia."},
	{ID: "Aquanaut.4", Adventure: "Aquanaut", Description: "Attempt to tread water."},
	{ID: "Aquanaut.5", Adventure: "Aquanaut", Description: "Attempt Scouting America swimmer test."},
	{ID: "Aquanaut.6", Adventure: "Aquanaut", Description: "Have 30 minutes, or more, of free swim time where you practice the Buddy System and stay within your ability group. The qualified adult supervision should conduct at least three buddy checks per half hour swimming."},

	// Art Explosion
	{ID: "ArtExplosion.1", Adventure: "Art Explosion", Description: "Create a piece of art by exploring drawing techniques using pencils."},
	{ID: "ArtExplosion.2", Adventure: "Art Explosion", Description: "Using a digital image, explore the effect of filters by changing an image using different editing or in-camera techniques."},
	{ID: "ArtExplosion.3", Adventure: "Art Explosion", Description: "Create a piece of art using paint as your medium."},
	{ID: "ArtExplosion.4", Adventure: "Art Explosion", Description: "Create a piece of art combining at least two media."},

	// Aware and Care
	{ID: "AwareAndCare.1", Adventure: "Aware and Care", Description: "Do an activity that shows the challenges of a being visually impaired."},
	{ID: "AwareAndCare.2", Adventure: "Aware and Care", Description: "Do an activity that shows the challenges of being hearing impaired."},
	{ID: "AwareAndCare.3", Adventure: "Aware and Care", Description: "Explore barriers to access."},
	{ID: "AwareAndCare.4", Adventure: "Aware and Care", Description: "Meet someone who has a disability or someone who works with people with disabilities about what obstacles they must overcome and how they do it."},

	// Build It
	{ID: "BuildIt.1", Adventure: "Build It", Description: "Learn about some basic tools and the proper use of each tool. Learn about and understand the need for safety when you work with tools."},
	{ID: "BuildIt.2", Adventure: "Build It", Description: "Demonstrate how to check for plumb, level, and square when building."},
	{ID: "BuildIt.3", Adventure: "Build It", Description: "With the guidance of your Webelos den leader, parent, or legal guardian, select a carpentry project that requires it to be either plumb, level, and/or square. Create a list of materials and tools you will need to complete the project."},
	{ID: "BuildIt.4", Adventure: "Build It", Description: "Build your carpentry project."},

	// Catch the Big One
	{ID: "CatchTheBigOne.1", Adventure: "Catch the Big One", Description: "Make a plan to go fishing. Determine where you will go and what type of fish you plan to catch. All of the following requirements are to be completed based on your choice."},
	{ID: "CatchTheBigOne.2", Adventure: "Catch the Big One", Description: "Use Scouting America SAFE Checklist to plan what you need for your fishing experience."},
	{ID: "CatchTheBigOne.3", Adventure: "Catch the Big One", Description: "Describe the environment where the fish might be found."},
	{ID: "CatchTheBigOne.4", Adventure: "Catch the Big One", Description: "Make a list of the equipment and materials you will need to fish."},
	{ID: "CatchTheBigOne.5", Adventure: "Catch the Big One", Description: "Determine the best type of knot to tie your hook to your line and tie it."},
	{ID: "CatchTheBigOne.6", Adventure: "Catch the Big One", Description: "Choose the appropriate type of fishing rod and tackle you will be using. Have an adult review your gear."},
	{ID: "CatchTheBigOne.7", Adventure: "Catch the Big One", Description: "Using what you have learned about fish and fishing equipment, spend at least one hour fishing following local guidelines and regulations."},

	// Champions for Nature Webelos
	{ID: "ChampionsNatureWebelos.1", Adventure: "Champions for Nature Webelos", Description: "Discover the four components that make up a habitat: food, water, shelter, space."},
	{ID: "ChampionsNatureWebelos.2", Adventure: "Champions for Nature Webelos", Description: "Pick an animal that is currently threatened or endangered to complete requirements 3, 4, and 5."},
	{ID: "ChampionsNatureWebelos.3", Adventure: "Champions for Nature Webelos", Description: "Identify the characteristics that classify an animal as a threatened or endangered species."},
	{ID: "ChampionsNatureWebelos.4", Adventure: "Champions for Nature Webelos", Description: "Explore what caused this animal to be threatened or endangered."},
	{ID: "ChampionsNatureWebelos.5", Adventure: "Champions for Nature Webelos", Description: "Research what is currently being done to protect the animal."},
	{ID: "ChampionsNatureWebelos.6", Adventure: "Champions for Nature Webelos", Description: "Participate in a conservation service project."},

	// Chef's Knife
	{ID: "ChefsKnife.1", Adventure: "Chef's Knife", Description: "Read, understand, and promise to follow the 'Cub Scout Knife Safety Rules.'"},
	{ID: "ChefsKnife.2", Adventure: "Chef's Knife", Description: "Demonstrate the knife safety circle."},
	{ID: "ChefsKnife.3", Adventure: "Chef's Knife", Description: "Demonstrate that you know how to care for and use a kitchen knife safely."},
	{ID: "ChefsKnife.4", Adventure: "Chef's Knife", Description: "Choose the correct cooking knife and demonstrate how to properly slice, dice, and mince."},

	// Earth Rocks
	{ID: "EarthRocks.1", Adventure: "Earth Rocks", Description: "Examine the three types of rocks, sedimentary, igneous, and metamorphic."},
	{ID: "EarthRocks.2", Adventure: "Earth Rocks", Description: "Find a rock, safely break it apart and examine it."},
	{ID: "EarthRocks.3", Adventure: "Earth Rocks", Description: "Make a mineral test kit and test minerals according to the Mohs scale of mineral hardness. Using the rock cycle chart or one like it, discuss how hardness determines which materials can be used in homes, in landscapes, or for recreation."},
	{ID: "EarthRocks.4", Adventure: "Earth Rocks", Description: "Grow a crystal."},

	// Let's Camp Webelos
	{ID: "LetsCampWebelos.1", Adventure: "Let's Camp Webelos", Description: "With your den, pack, or family, plan and participate in a campout."},
	{ID: "LetsCampWebelos.2", Adventure: "Let's Camp Webelos", Description: "Upon arrival at the campground, determine where to set up a tent."},
	{ID: "LetsCampWebelos.3", Adventure: "Let's Camp Webelos", Description: "Set up your tent without help from an adult."},
	{ID: "LetsCampWebelos.4", Adventure: "Let's Camp Webelos", Description: "Identify a potential weather hazard that could occur in your area. Determine the action you will take if you experience the weather hazard during the campout."},
	{ID: "LetsCampWebelos.5", Adventure: "Let's Camp Webelos", Description: "Show how to tie a bowline. Explain when this knot should be used and why."},
	{ID: "LetsCampWebelos.6", Adventure: "Let's Camp Webelos", Description: "Know the fire safety rules. Using those rules, locate a safe area to build a campfire."},
	{ID: "LetsCampWebelos.7", Adventure: "Let's Camp Webelos", Description: "Using tinder, kindling, and fuel wood, properly build a teepee fire lay. If circumstances permit, and there is no local restriction on fires, show how to safely light the fire while under adult supervision. After allowing the fire to burn safely, extinguish the flames with minimal impact to the fire site."},
	{ID: "LetsCampWebelos.8", Adventure: "Let's Camp Webelos", Description: "Recite the Outdoor Code and Leave No Trace Principles for Kids from Memory."},
	{ID: "LetsCampWebelos.9", Adventure: "Let's Camp Webelos", Description: "After your campout, share the things you did to follow the Outdoor Code and Leave No Trace Principles for Kids with your den or family."},

	// Math on the Trail
	{ID: "MathOnTheTrail.1", Adventure: "Math on the Trail", Description: "Determine your walking pace by walking  mile. Make a projection on how long it would take you to walk 2 miles."},
	{ID: "MathOnTheTrail.2", Adventure: "Math on the Trail", Description: "Walk 2 miles and record the time it took you to complete the two miles."},
	{ID: "MathOnTheTrail.3", Adventure: "Math on the Trail", Description: "Make a projection on how long it would take you to hike a 20-mile trail over two days. List all the factors to consider for your projection."},

	// Modular Design
	{ID: "ModularDesign.1", Adventure: "Modular Design", Description: "Learn what modular design is and identify three things that use modular design in their construction."},
	{ID: "ModularDesign.2", Adventure: "Modular Design", Description: "Using modular-based building pieces, build a model without a set of instructions."},
	{ID: "ModularDesign.3", Adventure: "Modular Design", Description: "Using the model made in requirement 2, create a set of step-by-step instructions on how to make your model."},
	{ID: "ModularDesign.4", Adventure: "Modular Design", Description: "Have someone make your model using your instructions."},
	{ID: "ModularDesign.5", Adventure: "Modular Design", Description: "Using the same modular pieces used in requirement 2, build another model of something different."},
	{ID: "ModularDesign.6", Adventure: "Modular Design", Description: "With your parent or legal guardian's permission, watch a video demonstrating how something was built using modular design."},

	// Paddle Onward
	{ID: "PaddleOnward.1", Adventure: "Paddle Onward", Description: "Before attempting requirements 5, 6, 7, 8 and 9 for this Adventure, you must pass Scouting America swimmer test."},
	{ID: "PaddleOnward.2", Adventure: "Paddle Onward", Description: "Pick a paddle craft for which to complete all requirements: canoe, kayak, or stand-up paddleboard."},
	{ID: "PaddleOnward.3", Adventure: "Paddle Onward", Description: "Review Safety Afloat."},
	{ID: "PaddleOnward.4", Adventure: "Paddle Onward", Description: "Demonstrate how to choose and properly wear a life jacket that is the correct size."},
	{ID: "PaddleOnward.5", Adventure: "Paddle Onward", Description: "Jump feet first into water over your head while wearing a life jacket. Then swim 25 feet wearing the life jacket."},
	{ID: "PaddleOnward.6", Adventure: "Paddle Onward", Description: "Demonstrate how to enter and exit a canoe, kayak, or stand-up paddleboard safely."},
	{ID: "PaddleOnward.7", Adventure: "Paddle Onward", Description: "Discuss what to do if your canoe or kayak tips over or you fall off your stand-up paddleboard."},
	{ID: "PaddleOnward.8", Adventure: "Paddle Onward", Description: "Learn how to pick a paddle that is the right size for you. Explore how the paddle craft responds to moving the paddle."},
	{ID: "PaddleOnward.9", Adventure: "Paddle Onward", Description: "Have 30 minutes, or more, of canoe, kayak, or stand-up paddleboard paddle time."},

	// Pedal Away
	{ID: "PedalAway.1", Adventure: "Pedal Away", Description: "Decide on gear and supplies you should bring for a long bike ride."},
	{ID: "PedalAway.2", Adventure: "Pedal Away", Description: "Discover how multi-gear bicycles work and how they benefit a rider."},
	{ID: "PedalAway.3", Adventure: "Pedal Away", Description: "Practice how to lubricate a chain."},
	{ID: "PedalAway.4", Adventure: "Pedal Away", Description: "Pick a bicycle lock that you will use. Demonstrate how it locks and unlocks, how it secures your bicycle, and how you carry it while you are riding your bicycle."},
	{ID: "PedalAway.5", Adventure: "Pedal Away", Description: "With your family, den, or pack, use a map and plan a bicycle ride that is at least 5 miles."},
	{ID: "PedalAway.6", Adventure: "Pedal Away", Description: "With your den, pack, or family and using the buddy system, go on a bicycle ride that is a minimum of 5 miles."},

	// Race Time Webelos
	{ID: "RaceTimeWebelos.1", Adventure: "Race Time Webelos", Description: "With an adult, build either a Pinewood Derby car or a Raingutter Regatta boat."},
	{ID: "RaceTimeWebelos.2", Adventure: "Race Time Webelos", Description: "Learn the rules of the race for the vehicle chosen in requirement 1."},
	{ID: "RaceTimeWebelos.3", Adventure: "Race Time Webelos", Description: "Explore the properties of friction and how it impacts your chosen vehicle."},
	{ID: "RaceTimeWebelos.4", Adventure: "Race Time Webelos", Description: "Before the race, discuss with your den how you will demonstrate good sportsmanship during the race."},
	{ID: "RaceTimeWebelos.5", Adventure: "Race Time Webelos", Description: "Participate in a Pinewood Derby or a Raingutter Regatta."},

	// Summertime Fun Webelos
	{ID: "SummertimeFunWebelos.1", Adventure: "Summertime Fun Webelos", Description: "Anytime during May through August participate in a total of three Cub Scout activities."},

	// Tech on the Trail
	{ID: "TechOnTheTrail.1", Adventure: "Tech on the Trail", Description: "Discuss how technology can help keep you safe in the outdoors."},
	{ID: "TechOnTheTrail.2", Adventure: "Tech on the Trail", Description: "Explore Global Positioning Satellite and how to use it."},
	{ID: "TechOnTheTrail.3", Adventure: "Tech on the Trail", Description: "With an adult, choose an online mapping program tool and plan a 2-mile trek."},
	{ID: "TechOnTheTrail.4", Adventure: "Tech on the Trail", Description: "Take your 2-mile trek."},

	// Yo-yo
	{ID: "YoYo.1", Adventure: "Yo-yo", Description: "Learn the safety rules of using a yo-yo and always follow them."},
	{ID: "YoYo.2", Adventure: "Yo-yo", Description: "Discover how to find the proper yo-yo string length for you."},
	{ID: "YoYo.3", Adventure: "Yo-yo", Description: "Explain why it is important to have the correct string length and to be in the right location before throwing a yo-yo."},
	{ID: "YoYo.4", Adventure: "Yo-yo", Description: "Demonstrate how to properly string a yo-yo and how to create a slip knot."},
	{ID: "YoYo.5", Adventure: "Yo-yo", Description: "Conduct the pendulum experiment with a yo-yo. Explain what happens to the yo-yo when the string is longer."},
	{ID: "YoYo.6", Adventure: "Yo-yo", Description: "Show that you can properly wind a yo-yo."},
	{ID: "YoYo.7", Adventure: "Yo-yo", Description: "Attempt each of the following: gravity pull, sleeper, breakaway."},
}
