package quadrature

// Nodes and weights of the Gauss rules for the weight function -log(x) on
// (0,1), orders 1..16. Generated offline from the exact moment sequence
// 1/(k+1)^2 via the modified Chebyshev algorithm in extended precision; each
// rule reproduces the first 2n moments to better than 1e-60 before rounding
// to double.

var logWeightNodes = map[int][]float64{
	1:  {2.50000000000000000e-01},
	2:  {1.12008806166976185e-01, 6.02276908118738130e-01},
	3:  {6.38907930873253982e-02, 3.68997063715618745e-01, 7.66880303938941466e-01},
	4:  {4.14484801993832211e-02, 2.45274914320602250e-01, 5.56165453560275802e-01, 8.48982394532985185e-01},
	5:  {2.91344721519720545e-02, 1.73977213320897633e-01, 4.11702520284902063e-01, 6.77314174582820394e-01, 8.94771361031008294e-01},
	6:  {2.16340058441169478e-02, 1.29583391154950794e-01, 3.14020449914765520e-01, 5.38657217351802164e-01, 7.56915337377402797e-01, 9.22668851372120291e-01},
	7:  {1.67193554082585155e-02, 1.00185677915675120e-01, 2.46294246207930612e-01, 4.33463493257033095e-01, 6.32350988047766127e-01, 8.11118626740105597e-01, 9.40848166743347702e-01},
	8:  {1.33202441608924645e-02, 7.97504290138949384e-02, 1.97871029326188053e-01, 3.54153994351909418e-01, 5.29458575234917239e-01, 7.01814529939099985e-01, 8.49379320441106644e-01, 9.53326450056359742e-01},
	9:  {1.08693360841754776e-02, 6.49836663380079366e-02, 1.62229398023882948e-01, 2.93749903971674664e-01, 4.46631881905468042e-01, 6.05481662776128582e-01, 7.54110137157163574e-01, 8.77265828835838257e-01, 9.62250559410281814e-01},
	10: {9.04263096219965097e-03, 5.39712662225006329e-02, 1.35311824639250788e-01, 2.47052416287159821e-01, 3.80212539609332323e-01, 5.23792317971843224e-01, 6.65775205516424551e-01, 7.94190416011966271e-01, 8.98161091219003560e-01, 9.68847988718633535e-01},
	11: {7.64394117463770666e-03, 4.55418282565789173e-02, 1.14522297455124586e-01, 2.10378581227033540e-01, 3.26695553221692858e-01, 4.55453246928813449e-01, 5.87648356359084412e-01, 7.13963850012561463e-01, 8.25453217801811800e-01, 9.14193921612543092e-01, 9.73860256275586145e-01},
	12: {6.54872227908005842e-03, 3.89468095604499562e-02, 9.81502631060066355e-02, 1.81138581590631564e-01, 2.83220067667372566e-01, 3.98434435163436629e-01, 5.19952626792352657e-01, 6.40510916716106493e-01, 7.52865012051830540e-01, 8.50240024162302155e-01, 9.26749683223914156e-01, 9.77756129689997477e-01},
	13: {5.67476625624266894e-03, 3.36901087990325379e-02, 8.50367544741750248e-02, 1.57497559477889015e-01, 2.47569578876843138e-01, 3.50744312360855182e-01, 4.61773746761610260e-01, 5.74959466525561291e-01, 6.84459880350430039e-01, 7.84602568810347067e-01, 8.70186428407888402e-01, 9.36757829306751444e-01, 9.80843451811590938e-01},
	14: {4.96600357386854218e-03, 2.94325401188851796e-02, 7.43762922245357616e-02, 1.38138491989186291e-01, 2.18055648498959087e-01, 3.10662083918101961e-01, 4.11872475177750219e-01, 5.17179307398654364e-01, 6.21864859728511132e-01, 7.21220745208108860e-01, 8.10765988071589838e-01, 8.86454038034434677e-01, 9.44859139461818653e-01, 9.83331026485678494e-01},
	15: {4.38311017547540413e-03, 2.59358981053306147e-02, 6.55960954123162437e-02, 1.22101934073331600e-01, 1.93395262374007115e-01, 2.76772838706102031e-01, 3.69015127139742938e-01, 4.66524328964706581e-01, 5.65473473791817338e-01, 6.61962919012456408e-01, 7.52178883378785801e-01, 8.32548033866189585e-01, 8.99882050120898058e-01, 9.51506188743409864e-01, 9.85364468122131965e-01},
	16: {3.89783448711591594e-03, 2.30289456168732386e-02, 5.82803983062404121e-02, 1.08678365091054038e-01, 1.72609454909843946e-01, 2.47937054470578483e-01, 3.32094549129917149e-01, 4.22183910581948596e-01, 5.15082473381462624e-01, 6.07556120447728776e-01, 6.96375653228214042e-01, 7.78432565873265370e-01, 8.50850269715391128e-01, 9.11086857222271895e-01, 9.57025571703542188e-01, 9.87047800247984441e-01},
}

var logWeightWeights = map[int][]float64{
	1:  {1.00000000000000000e+00},
	2:  {7.18539319030384482e-01, 2.81460680969615573e-01},
	3:  {5.13404552232363365e-01, 3.91980041201487550e-01, 9.46154065661491267e-02},
	4:  {3.83464068145135117e-01, 3.86875317774762639e-01, 1.90435126950142419e-01, 3.92254871299598309e-02},
	5:  {2.97893471782894437e-01, 3.49776226513224153e-01, 2.34488290044052416e-01, 9.89304595166331513e-02, 1.89115521431957971e-02},
	6:  {2.38763662578547559e-01, 3.08286573273946818e-01, 2.45317426563210372e-01, 1.42008756566476685e-01, 5.54546223248862866e-02, 1.01689586929322763e-02},
	7:  {1.96169389425248197e-01, 2.70302644247272961e-01, 2.39681873007690949e-01, 1.65775774810432902e-01, 8.89432271376579681e-02, 3.31943043565710652e-02, 5.93278701512592408e-03},
	8:  {1.64416604728002874e-01, 2.37525610023306022e-01, 2.26841984431919136e-01, 1.75754079006070235e-01, 1.12924030246759052e-01, 5.78722107177820702e-02, 2.09790737421329775e-02, 3.68640710402761904e-03},
	9:  {1.40068438748134738e-01, 2.09772205201030459e-01, 2.11427149896602717e-01, 1.77156233938079999e-01, 1.27799228033205509e-01, 7.84789026115621791e-02, 3.90225049853990952e-02, 1.38672955495930238e-02, 2.40804103639231156e-03},
	10: {1.20955131954570513e-01, 1.86363542564071866e-01, 1.95660873277759995e-01, 1.73577142182906929e-01, 1.35695672995484212e-01, 9.36467585381105250e-02, 5.57877273514158709e-02, 2.71598108992333297e-02, 9.51518260284851466e-03, 1.63815763359826316e-03},
	11: {1.05652256099100492e-01, 1.66571680600629046e-01, 1.80563218287753735e-01, 1.67278736773784187e-01, 1.38697057401631213e-01, 1.03833433365044067e-01, 6.95366978887352327e-02, 4.05416008035963324e-02, 1.94354024762181735e-02, 6.73742934245006274e-03, 1.15248696105747783e-03},
	12: {9.31926914439313303e-02, 1.49751827576322355e-01, 1.66557454364593016e-01, 1.59633559436987649e-01, 1.38424831864835618e-01, 1.10016570635721164e-01, 7.99618217708289725e-02, 5.24069548246417702e-02, 3.00710888737611877e-02, 1.42492455879982792e-02, 4.89992458232176107e-03, 8.34029038056903352e-04},
	13: {8.29004967932757825e-02, 1.35368673165744496e-01, 1.53773284392292209e-01, 1.51458158509988200e-01, 1.36040336537283063e-01, 1.13176822881633804e-01, 8.73744304800452565e-02, 6.21602306418048700e-02, 4.00877289341658519e-02, 2.27238449399721938e-02, 1.06712304129684445e-02, 3.64649227597414012e-03, 6.18270034851697023e-04},
	14: {7.42912250675104163e-02, 1.22988772469322910e-01, 1.42199306562523359e-01, 1.43229297641264214e-01, 1.32345083772085204e-01, 1.14135875736676481e-01, 9.22830380790736066e-02, 6.97536732939375709e-02, 4.88303236005135644e-02, 3.11017960644161401e-02, 1.74628119501960936e-02, 8.14242342987593626e-03, 2.76843641856393740e-03, 4.67935914040560144e-04},
	15: {6.70099789164937121e-02, 1.12264150286705736e-01, 1.31760177039679904e-01, 1.35217649061934730e-01, 1.27881798645680361e-01, 1.13532907490219423e-01, 9.52052397843586584e-02, 7.53893141673959571e-02, 5.60784244926537181e-02, 3.87682953750182330e-02, 2.44514832687500773e-02, 1.36246301382388461e-02, 6.31644759859076137e-03, 2.13888991594447147e-03, 3.60613818335406625e-04},
	16: {6.07917100435912336e-02, 1.02915677517582141e-01, 1.22355662046009200e-01, 1.27569246937015990e-01, 1.23013574600070910e-01, 1.11847244855485722e-01, 9.65963851521243477e-02, 7.93566643514731357e-02, 6.18504945819652041e-02, 4.54352465077266718e-02, 3.10989747515818052e-02, 1.94597659273608413e-02, 1.07762549632055265e-02, 4.97254289008764155e-03, 1.67820111005119454e-03, 2.82353764668436316e-04},
}
