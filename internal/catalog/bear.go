package catalog

import "github.com/dentrack/dentrack-go/internal/store"

// Bear rank (3rd grade): 6 required adventures, 17 electives.
var bearCatalog = []store.Requirement{
	// Required adventures (all six must be completed).

	// Bobcat Bear
	{ID: "BobcatBear.1", Adventure: "Bobcat Bear", Description: "Get to know members of your den.", Required: true},
	{ID: "BobcatBear.2", Adventure: "Bobcat Bear", Description: "Recite the Scout Oath and Law with your den and den leader.", Required: true},
	{ID: "BobcatBear.3", Adventure: "Bobcat Bear", Description: "Learn about the Scout Oath. Identify the three points of the Scout Oath.", Required: true},
	{ID: "BobcatBear.4", Adventure: "Bobcat Bear", Description: "With your den create a den Code of Conduct.", Required: true},
	{ID: "BobcatBear.5", Adventure: "Bobcat Bear", Description: "Learn about the denner position and responsibilities.", Required: true},
	{ID: "BobcatBear.6", Adventure: "Bobcat Bear", Description: "Demonstrate the Cub Scout sign, Cub Scout salute, and Cub Scout handshake. Show how each is used.", Required: true},
	{ID: "BobcatBear.7", Adventure: "Bobcat Bear", Description: "Share with your den, or family, a time when you demonstrated the Cub Scout motto 'Do Your Best.' Explain why it is important to do your best.", Required: true},
	{ID: "BobcatBear.8", Adventure: "Bobcat Bear", Description: "At home, with your parent or legal guardian do the activities in the booklet 'How to Protect Your Children from Child Abuse: A Parent's Guide.'", Required: true},

	// Bear Strong
	{ID: "BearStrong.1", Adventure: "Bear Strong", Description: "Sample food from three of the following food groups: protein, vegetables, fruits, dairy, and grains.", Required: true},
	{ID: "BearStrong.2", Adventure: "Bear Strong", Description: "Be active for 30 minutes with your den or at least one other person that includes both stretching and moving.", Required: true},
	{ID: "BearStrong.3", Adventure: "Bear Strong", Description: "Be active for 15 minutes doing personal exercises that include cardio, muscular strength, and flexibility.", Required: true},
	{ID: "BearStrong.4", Adventure: "Bear Strong", Description: "Do a relaxing activity for 10 minutes.", Required: true},
	{ID: "BearStrong.5", Adventure: "Bear Strong", Description: "Review your Scouting America Annual Health and Medical record with your parent or guardian. Discuss your ability to participate in den and pack activities.", Required: true},

	// Standing Tall
	{ID: "StandingTall.1", Adventure: "Standing Tall", Description: "With permission from your parent or legal guardian, watch the Protect Yourself Rules video for the Bear rank.", Required: true},
	{ID: "StandingTall.2", Adventure: "Standing Tall", Description: "Complete the Personal Space Bubble worksheet that is part of the Protect Yourself Rules resources.", Required: true},
	{ID: "StandingTall.3", Adventure: "Standing Tall", Description: "With your parent or legal guardian, set up a family policy for digital devices.", Required: true},
	{ID: "StandingTall.4", Adventure: "Standing Tall", Description: "Identify common personal safety gear for your head, eyes, mouth, hands, and feet. List how each of these items protect you. Demonstrate the proper use of personal safety gear for an activity.", Required: true},

	// Fellowship
	{ID: "Fellowship.1", Adventure: "Fellowship", Description: "With your parent or legal guardian talk about your family's faith traditions. Identify three holidays or celebrations that are part of your family's faith traditions. Make a craft, work of art, or a food item that is part of your favorite family's faith tradition, holiday or celebration.", Required: true},
	{ID: "Fellowship.2", Adventure: "Fellowship", Description: "With your family, attend a religious service OR other gathering that shows how your family expresses reverence.", Required: true},
	{ID: "Fellowship.3", Adventure: "Fellowship", Description: "Carry out an act of kindness.", Required: true},
	{ID: "Fellowship.4", Adventure: "Fellowship", Description: "With your parent or legal guardian identify a religion or faith that is different from your own. Determine two things that it has in common with your family's beliefs.", Required: true},

	// Paws for Action
	{ID: "PawsForAction.1", Adventure: "Paws for Action", Description: "Familiarize yourself with the flag of the United States of America including the history, demonstrating how to raise and lower the flag, how to properly fold and display, and the United States etiquette.", Required: true},
	{ID: "PawsForAction.2", Adventure: "Paws for Action", Description: "Identify 3 symbols that represent the United States. Pick your favorite and make a model, work of art, or other craft that depicts the symbol.", Required: true},
	{ID: "PawsForAction.3", Adventure: "Paws for Action", Description: "Learn about the mission of any non-profit. Find out how they fund their activities and how volunteers are used to help.", Required: true},
	{ID: "PawsForAction.4", Adventure: "Paws for Action", Description: "Participate in a service project.", Required: true},

	// Bear Habitat
	{ID: "BearHabitat.1", Adventure: "Bear Habitat", Description: "Prepare for a one-mile walk by gathering the Cub Scout Six Essentials and weather appropriate clothing and shoes.", Required: true},
	{ID: "BearHabitat.2", Adventure: "Bear Habitat", Description: "'Know Before You Go' Identify the location of your walk on a map and confirm your one-mile route.", Required: true},
	{ID: "BearHabitat.3", Adventure: "Bear Habitat", Description: "'Choose the Right Path' Learn about the path and surrounding area you will be walking on.", Required: true},
	{ID: "BearHabitat.4", Adventure: "Bear Habitat", Description: "'Trash your Trash' Make a plan for what you will do with your personal trash or trash you find along the trail.", Required: true},
	{ID: "BearHabitat.5", Adventure: "Bear Habitat", Description: "'Leave What You Find' Take pictures along your walk or bring a sketchbook to draw five things that you want to remember on your walk.", Required: true},
	{ID: "BearHabitat.6", Adventure: "Bear Habitat", Description: "'Be Careful with Fire' Determine the fire danger rating along your path.", Required: true},
	{ID: "BearHabitat.7", Adventure: "Bear Habitat", Description: "'Respect Wildlife' From a safe distance, identify as you look up, down, and around you, six signs of any mammals, birds, insects, reptiles.", Required: true},
	{ID: "BearHabitat.8", Adventure: "Bear Habitat", Description: "'Be Kind to Other Visitors' Identify what you need to do as a den to be kind to others on the path.", Required: true},
	{ID: "BearHabitat.9", Adventure: "Bear Habitat", Description: "Go on your one-mile walk while practicing your Leave No Trace Principles for Kids.", Required: true},

	// Elective adventures (complete any two).

	// A Bear Goes Fishing
	{ID: "ABearGoesFishing.1", Adventure: "A Bear Goes Fishing", Description: "Make a plan to go fishing. Determine where you will go and what type of fish you plan to catch. All of the following requirements are to be completed based on your choice."},
	{ID: "ABearGoesFishing.2", Adventure: "A Bear Goes Fishing", Description: "Use the Scouting America S.A.F.E. Checklist to plan what you need for your fishing experience."},
	{ID: "ABearGoesFishing.3", Adventure: "A Bear Goes Fishing", Description: "Determine the best type of fishing gear to use. Have an adult review your fishing gear."},
	{ID: "ABearGoesFishing.4", Adventure: "A Bear Goes Fishing", Description: "Following local and state guidelines, go on a fishing adventure with your den or family. Follow all fishing regulations and proper fish handling techniques."},

	// Balancing Bears
	{ID: "BalancingBears.1", Adventure: "Balancing Bears", Description: "Identify a personal interest or hobby that you could turn into a small business."},
	{ID: "BalancingBears.2", Adventure: "Balancing Bears", Description: "Develop a business plan for your idea."},
	{ID: "BalancingBears.3", Adventure: "Balancing Bears", Description: "Based on your business plan, create a marketing strategy."},
	{ID: "BalancingBears.4", Adventure: "Balancing Bears", Description: "Implement your marketing strategy and sell your product or service."},

	// Baloo the Builder
	{ID: "BalooTheBuilder.1", Adventure: "Baloo the Builder", Description: "Discover the tools that are in a toolbox. Learn the safe way to use each tool."},
	{ID: "BalooTheBuilder.2", Adventure: "Baloo the Builder", Description: "Learn how to measure using a tape measure."},
	{ID: "BalooTheBuilder.3", Adventure: "Baloo the Builder", Description: "With the guidance of your Webelos den leader, parent, or legal guardian, select a carpentry project to build with your parent, den, or other adult partner."},
	{ID: "BalooTheBuilder.4", Adventure: "Baloo the Builder", Description: "Build your carpentry project."},
	{ID: "BalooTheBuilder.5", Adventure: "Baloo the Builder", Description: "Apply a finish to your carpentry project."},

	// Bears Afloat
	{ID: "BearsAfloat.1", Adventure: "Bears Afloat", Description: "Before attempting requirements 3, 4, and 5 for this Adventure, you must pass the Scouting America swimmer test."},
	{ID: "BearsAfloat.2", Adventure: "Bears Afloat", Description: "Review Safety Afloat."},
	{ID: "BearsAfloat.3", Adventure: "Bears Afloat", Description: "Demonstrate how to choose and properly wear a life jacket that is the correct size."},
	{ID: "BearsAfloat.4", Adventure: "Bears Afloat", Description: "Explain how to stay safe on the water by staying away from the open water without a life jacket or without an adult."},
	{ID: "BearsAfloat.5", Adventure: "Bears Afloat", Description: "Jump feet first into water over your head while wearing a life jacket. Then swim 25 feet wearing the life jacket."},

	// Bears on Bikes
	{ID: "BearsOnBikes.1", Adventure: "Bears on Bikes", Description: "Discover what gear and supplies you should bring for a long bike ride."},
	{ID: "BearsOnBikes.2", Adventure: "Bears on Bikes", Description: "Practice fixing a flat tire."},
	{ID: "BearsOnBikes.3", Adventure: "Bears on Bikes", Description: "Learn about bike safety and traffic safety rules."},
	{ID: "BearsOnBikes.4", Adventure: "Bears on Bikes", Description: "Show how to wear the proper safety equipment for bike riding."},
	{ID: "BearsOnBikes.5", Adventure: "Bears on Bikes", Description: "With your den, pack, or family and using the buddy system, go on a bicycle ride that is a minimum of 3 miles."},

	// Champions for Nature Bear
	{ID: "ChampionsNatureBear.1", Adventure: "Champions for Nature Bear", Description: "Discover the four components that make up a habitat: food, water, shelter, space."},
	{ID: "ChampionsNatureBear.2", Adventure: "Champions for Nature Bear", Description: "Pick an animal that is currently threatened or endangered to complete requirements 3, 4, and 5."},
	{ID: "ChampionsNatureBear.3", Adventure: "Champions for Nature Bear", Description: "Identify the characteristics that classify an animal as a threatened or endangered species."},
	{ID: "ChampionsNatureBear.4", Adventure: "Champions for Nature Bear", Description: "Explore what caused this animal to be threatened or endangered."},
	{ID: "ChampionsNatureBear.5", Adventure: "Champions for Nature Bear", Description: "Research what is currently being done to protect the animal and participate in a conservation service project."},

	// Chef Tech
	{ID: "ChefTech.1", Adventure: "Chef Tech", Description: "Identify six technological devices used to prepare food."},
	{ID: "ChefTech.2", Adventure: "Chef Tech", Description: "Explain how three of the six devices identified in requirement 1 work."},
	{ID: "ChefTech.3", Adventure: "Chef Tech", Description: "Using a device that is not powered by electricity or batteries, make a food item."},
	{ID: "ChefTech.4", Adventure: "Chef Tech", Description: "With the help of an adult, prepare a food item using at least two different methods of food preparation: baking, boiling, simmering, roasting, frying, or grilling."},
	{ID: "ChefTech.5", Adventure: "Chef Tech", Description: "Cook a food item from scratch using a recipe that requires ingredients you measure out."},

	// Critter Care
	{ID: "CritterCare.1", Adventure: "Critter Care", Description: "Discover three wild animals that live in your area. Explain how one of these animals survives in nature."},
	{ID: "CritterCare.2", Adventure: "Critter Care", Description: "Learn what it takes to care for a dog or cat. Make a poster about the care needed for a dog, a cat, or another pet that you would like to have."},
	{ID: "CritterCare.3", Adventure: "Critter Care", Description: "Visit a veterinarian and learn what a veterinarian does for your pet OR watch a video with a veterinarian to learn what the veterinarian does."},
	{ID: "CritterCare.4", Adventure: "Critter Care", Description: "Discover an animal that is currently threatened or endangered."},
	{ID: "CritterCare.5", Adventure: "Critter Care", Description: "Learn what 'cruelty to animals' means."},

	// Forensics
	{ID: "Forensics.1", Adventure: "Forensics", Description: "Discover what forensics is and how it is used to help solve crimes."},
	{ID: "Forensics.2", Adventure: "Forensics", Description: "Analyze your fingerprints. Compare them to your family members' fingerprints."},
	{ID: "Forensics.3", Adventure: "Forensics", Description: "Learn about chromatography and how it is used in forensics. Complete a chromatography investigation."},
	{ID: "Forensics.4", Adventure: "Forensics", Description: "Discover how mystery powders are identified. Test four samples of mystery powders and identify what they are."},
	{ID: "Forensics.5", Adventure: "Forensics", Description: "Explore the different techniques that are used to identify and collect evidence. Learn how the evidence is used to solve a crime. Participate in a crime scene investigation using evidence collection techniques."},

	// Let's Camp Bear
	{ID: "LetsCampBear.1", Adventure: "Let's Camp Bear", Description: "With your den, pack, or family, plan and participate in a campout."},
	{ID: "LetsCampBear.2", Adventure: "Let's Camp Bear", Description: "Upon arrival at the campground, determine where to set up your tent."},
	{ID: "LetsCampBear.3", Adventure: "Let's Camp Bear", Description: "Set up your tent without help from an adult."},
	{ID: "LetsCampBear.4", Adventure: "Let's Camp Bear", Description: "Once your tents are set up, determine a safe place to build a campfire."},
	{ID: "LetsCampBear.5", Adventure: "Let's Camp Bear", Description: "Show how to tie a bowline. Explain when this knot should be used and why. Explain what the word 'bight' means when using this knot."},
	{ID: "LetsCampBear.6", Adventure: "Let's Camp Bear", Description: "After your campout, share the things you did to follow the Outdoor Code and Leave No Trace Principles for Kids with your den or family."},

	// Marble Madness
	{ID: "MarbleMadness.1", Adventure: "Marble Madness", Description: "Create a marble tray or marble maze."},
	{ID: "MarbleMadness.2", Adventure: "Marble Madness", Description: "Learn about different types of marbles."},
	{ID: "MarbleMadness.3", Adventure: "Marble Madness", Description: "Learn and demonstrate two different marble games."},
	{ID: "MarbleMadness.4", Adventure: "Marble Madness", Description: "Complete a gravity investigation using marbles."},

	// Race Time Bear
	{ID: "RaceTimeBear.1", Adventure: "Race Time Bear", Description: "With an adult, build either a Pinewood Derby car or a Raingutter Regatta boat."},
	{ID: "RaceTimeBear.2", Adventure: "Race Time Bear", Description: "Learn the rules of the race for the vehicle chosen in requirement 1."},
	{ID: "RaceTimeBear.3", Adventure: "Race Time Bear", Description: "Explore the properties of friction and how it impacts your chosen vehicle."},
	{ID: "RaceTimeBear.4", Adventure: "Race Time Bear", Description: "Before the race, discuss with your den how you will demonstrate good sportsmanship during the race."},
	{ID: "RaceTimeBear.5", Adventure: "Race Time Bear", Description: "Participate in a Pinewood Derby or a Raingutter Regatta."},

	// Roaring Laughter
	{ID: "RoaringLaughter.1", Adventure: "Roaring Laughter", Description: "Develop a funny skit with your den or your family. OR Perform an original skit for your den, your pack, or your family."},
	{ID: "RoaringLaughter.2", Adventure: "Roaring Laughter", Description: "Practice reading tongue-twisters. Perform one for your den, your pack, or your family."},
	{ID: "RoaringLaughter.3", Adventure: "Roaring Laughter", Description: "Share at least one joke with your den at one of your den meetings."},
	{ID: "RoaringLaughter.4", Adventure: "Roaring Laughter", Description: "Perform a magic trick for your den or your family."},

	// Salmon Run
	{ID: "SalmonRun.1", Adventure: "Salmon Run", Description: "Explain the importance of good sportsmanship."},
	{ID: "SalmonRun.2", Adventure: "Salmon Run", Description: "Understand what it means to be physically fit. Discover how you can either maintain or improve your physical fitness."},
	{ID: "SalmonRun.3", Adventure: "Salmon Run", Description: "Learn about the importance of stretching before and after any physical activity."},
	{ID: "SalmonRun.4", Adventure: "Salmon Run", Description: "With your den, participate in the Cub Scout Sports program. Complete two of the four activities in a sport of your choosing."},

	// Summertime Fun Bear
	{ID: "SummertimeFunBear.1", Adventure: "Summertime Fun Bear", Description: "Anytime during May through August participate in a total of three Cub Scout activities."},

	// Super Science
	{ID: "SuperScience.1", Adventure: "Super Science", Description: "Do a science experiment."},
	{ID: "SuperScience.2", Adventure: "Super Science", Description: "Visit a museum or visit with someone to discover more about science."},
	{ID: "SuperScience.3", Adventure: "Super Science", Description: "Discuss with your family, your den, or other trusted adults how science affects your everyday life."},
	{ID: "SuperScience.4", Adventure: "Super Science", Description: "Think like a computer programmer. Chart your day from wake-up to bedtime. Record the time that you spend on each task. Use your chart to create an algorithm to determine the most efficient path."},

	// Whittling
	{ID: "Whittling.1", Adventure: "Whittling", Description: "Read, understand, and promise to follow the 'Cub Scout Knife Safety Rules.'"},
	{ID: "Whittling.2", Adventure: "Whittling", Description: "Demonstrate the knife safety circle."},
	{ID: "Whittling.3", Adventure: "Whittling", Description: "Demonstrate that you know how to care for and use a pocketknife safely. Show proper hand position when using a pocketknife."},
	{ID: "Whittling.4", Adventure: "Whittling", Description: "Make a carved hiking stick."},
	{ID: "Whittling.5", Adventure: "Whittling", Description: "Earn your Whittling Chip card."},
}
