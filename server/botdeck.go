package server

// botDeckText is the static list served by /api/deck/bot. The commander is
// the final entry.
const botDeckText = `1 Abrupt Decay
1 Accursed Marauder
1 Animate Dead
1 Arbor Elf
1 Arid Mesa
1 Badlands
1 Barrowgoyf
1 Bayou
1 Birds of Paradise
1 Birthing Pod
1 Blackcleave Cliffs
1 Blazemire Verge
1 Blood Crypt
1 Bloodstained Mire
1 Blooming Marsh
1 Boseiju, Who Endures
1 Broadside Bombardiers
1 Cankerbloom
1 Carnage, Crimson Chaos
1 Chaos Defiler
1 Command Tower
1 Commercial District
1 Copperline Gorge
1 Deadpool, Trading Card
1 Deathrite Shaman
1 Delighted Halfling
1 Demonic Tutor
1 Detective's Phoenix
1 Dismember
1 Eldritch Evolution
1 Elves of Deep Shadow
1 Elvish Mystic
1 Elvish Spirit Guide
1 Emperor of Bones
1 Endurance
1 Fable of the Mirror-Breaker
1 Fatal Push
1 Flare of Malice
1 Forest
1 Frenzied Baloth
1 Fury
1 Fyndhorn Elves
1 Goblin Bombardment
1 Grief
1 Grove of the Burnwillows
1 Headliner Scarlett
1 Ignoble Hierarch
1 Karplusan Forest
1 Keen-Eyed Curator
1 Laelia, the Blade Reforged
1 Lazotep Quarry
1 Lightning Bolt
1 Lively Dirge
1 Llanowar Elves
1 Llanowar Wastes
1 Magus of the Moon
1 Mana Confluence
1 Marsh Flats
1 Mawloc
1 Metamorphosis Fanatic
1 Minsc & Boo, Timeless Heroes
1 Misty Rainforest
1 Mountain
1 Oliphaunt
1 Opposition Agent
1 Orcish Bowmasters
1 Overgrown Tomb
1 Pendelhaven
1 Phyrexian Tower
1 Polluted Delta
1 Prismatic Vista
1 Pyrogoyf
1 Scalding Tarn
1 Simian Spirit Guide
1 Skullclamp
1 Spider-Punk
1 Starting Town
1 Stomping Ground
1 Sulfurous Springs
1 Survival of the Fittest
1 Swamp
1 Taiga
1 Tainted Pact
1 Tarmogoyf
1 Tersa Lightshatter
1 Thoughtseize
1 Troll of Khazad-dûm
1 Umbral Collar Zealot
1 Underground Mortuary
1 Unearth
1 Utopia Sprawl
1 Verdant Catacombs
1 Wastewood Verge
1 Wight of the Reliquary
1 Wild Growth
1 Windswept Heath
1 Wooded Foothills
1 Worldly Tutor
1 Yavimaya, Cradle of Growth
1 Slimefoot and Squee`
